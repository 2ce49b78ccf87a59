package model

// Customer is customer model entity
type Customer struct {
	ID    int64  `json:"id" bson:"_id" msgpack:"id"`
	Name  string `json:"name" bson:"name" msgpack:"name"`
	Email string `json:"email" bson:"email" msgpack:"email"`
	Phone string `json:"phone" bson:"phone" msgpack:"phone"`
}

// CustomerInput is customer data supplied by client on create and update
type CustomerInput struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Email string `json:"email" form:"email" validate:"required"`
	Phone string `json:"phone" form:"phone" validate:"required"`
}

// IDParam is customer identifier taken from request, Present is false if key was not sent at all
type IDParam struct {
	Value   string
	Present bool
}
