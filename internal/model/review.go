package model

import "time"

// Review is a user's rating of a room, optionally with a comment.
// Rating is an integer between 1 and 5 inclusive.  Any write to a
// review (insert, update or delete) must be followed, inside the same
// transaction, by a recomputation of the owning hotel's derived rating.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – reviewing user.
//  RoomID    – room being reviewed.
//  Rating    – integer rating in [1,5].
//  Comment   – optional free-text comment.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Review struct {
	ID        uint64    // reviews.id
	UserID    uint64    // reviews.user_id
	RoomID    uint64    // reviews.room_id
	Rating    int       // reviews.rating
	Comment   *string   // reviews.comment (nullable)
	CreatedAt time.Time // reviews.created_at
	UpdatedAt time.Time // reviews.updated_at
}
