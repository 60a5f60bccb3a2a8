package models

import "time"

// AccountDB represents a driver account record in the database.
// Age is free-form text on purpose: the registration form does not
// constrain it and the stored value is only ever displayed.
type AccountDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Name         string    `json:"name" db:"name"`                 // Display name
	Age          string    `json:"age" db:"age"`                   // Free-form age
	Email        string    `json:"email" db:"email"`               // Unique email
	VehicleType  string    `json:"vehicle_type" db:"vehicle_type"` // Car, truck, ...
	VehicleNo    string    `json:"vehicle_no" db:"vehicle_no"`     // Registration number
	Username     string    `json:"username" db:"username"`         // Unique login handle
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never plaintext
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
