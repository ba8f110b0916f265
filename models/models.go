package models

// SigninRequest for authentication
type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest for user registration
type SignupRequest struct {
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Dob       *string `json:"dob"`
	Role      *string `json:"role"`
	LoginID   *string `json:"loginId"`
	Section   *string `json:"section"`
}

// UpdateUserRequest for partial user updates
type UpdateUserRequest struct {
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	Dob           *string `json:"dob"`
	Role          *string `json:"role"`
	LoginID       *string `json:"loginId"`
	Section       *string `json:"section"`
	LastActivity  *string `json:"lastActivity"`
	TotalActivity *string `json:"totalActivity"`
}

// User model; the password hash is never serialized to clients
type User struct {
	ID            string `json:"_id" bson:"_id"`
	Username      string `json:"username" bson:"username"`
	Password      string `json:"-" bson:"password"`
	FirstName     string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	Dob           string `json:"dob,omitempty" bson:"dob,omitempty"`
	Role          string `json:"role,omitempty" bson:"role,omitempty"`
	LoginID       string `json:"loginId,omitempty" bson:"loginId,omitempty"`
	Section       string `json:"section,omitempty" bson:"section,omitempty"`
	LastActivity  string `json:"lastActivity,omitempty" bson:"lastActivity,omitempty"`
	TotalActivity string `json:"totalActivity,omitempty" bson:"totalActivity,omitempty"`
}

// Lesson is embedded in a Module
type Lesson struct {
	ID          string `json:"_id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Module is embedded in its owning Course document
type Module struct {
	ID          string   `json:"_id" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Lessons     []Lesson `json:"lessons" bson:"lessons"`
}

// Course model with embedded modules
type Course struct {
	ID          string   `json:"_id" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Number      string   `json:"number,omitempty" bson:"number,omitempty"`
	Credits     int      `json:"credits,omitempty" bson:"credits,omitempty"`
	StartDate   string   `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Department  string   `json:"department,omitempty" bson:"department,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty"`
	Author      string   `json:"author,omitempty" bson:"author,omitempty"`
	Modules     []Module `json:"modules" bson:"modules"`
}

// Assignment model
type Assignment struct {
	ID             string  `json:"_id" bson:"_id"`
	Name           string  `json:"name" bson:"name"`
	Description    string  `json:"description,omitempty" bson:"description,omitempty"`
	Points         float64 `json:"points" bson:"points"`
	DueDate        string  `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	AvailableFrom  string  `json:"availableFrom,omitempty" bson:"availableFrom,omitempty"`
	AvailableUntil string  `json:"availableUntil,omitempty" bson:"availableUntil,omitempty"`
	Course         string  `json:"course" bson:"course"`
}

// Enrollment binds one user to one course; unique on (user, course)
type Enrollment struct {
	ID     string `json:"_id" bson:"_id"`
	User   string `json:"user" bson:"user"`
	Course string `json:"course" bson:"course"`
}

// Grade model
type Grade struct {
	ID         string  `json:"_id" bson:"_id"`
	Student    string  `json:"student" bson:"student"`
	Assignment string  `json:"assignment" bson:"assignment"`
	Grade      float64 `json:"grade" bson:"grade"`
}

// GradeRequest for recording a grade on an assignment
type GradeRequest struct {
	Student string  `json:"student" binding:"required"`
	Grade   float64 `json:"grade"`
}
