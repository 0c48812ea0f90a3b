package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string        `json:"email,omitempty" bson:"email,omitempty" validate:"required,email"`
	Name      string        `json:"name,omitempty" bson:"name,omitempty" validate:"required"`
	Password  string        `json:"password,omitempty" bson:"password,omitempty" validate:"required,min=6,max=64"`
	CreatedAt time.Time     `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"email,required"`
	Password string `json:"password" validate:"required"`
}
