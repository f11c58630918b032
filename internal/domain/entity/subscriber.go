package entity

import (
	"time"
)

type Subscriber struct {
	ID           string    `json:"id" firestore:"-"`
	Email        string    `json:"email" firestore:"email"`
	SubscribedAt time.Time `json:"subscribedAt" firestore:"subscribedAt"`
}
