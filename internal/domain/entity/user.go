package entity

import (
	"time"
)

type User struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name,omitempty" firestore:"name,omitempty"`
	Email     string    `json:"email" firestore:"email"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
