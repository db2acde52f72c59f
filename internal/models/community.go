package models

import "time"

// CommunityPost is an entry in the vendor "parivaar" feed.
type CommunityPost struct {
	ID        string    `json:"_id"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"authorName"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Claps     int       `json:"claps"`
	Comments  []Comment `json:"comments,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a reply on a community post.
type Comment struct {
	ID        string    `json:"_id"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"authorName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
