package entity

import (
	"time"
)

const (
	AdTypeImage = "image"
	AdTypeCode  = "code"
)

// AdMutableFields lists the fields a partial ad update may replace.
var AdMutableFields = map[string]bool{
	"title":    true,
	"type":     true,
	"position": true,
	"image":    true,
	"link":     true,
	"content":  true,
}

type Ad struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Type      string    `json:"type" firestore:"type"`
	Position  string    `json:"position" firestore:"position"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	Link      string    `json:"link,omitempty" firestore:"link,omitempty"`
	Content   string    `json:"content,omitempty" firestore:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
