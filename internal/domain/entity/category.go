package entity

import "github.com/google/uuid"

// Category groups products into a browsable hierarchy. The parent link
// is optional; top-level categories have none.
type Category struct {
	ID       uuid.UUID
	Name     string
	ParentID *uuid.UUID
}

// HealthGoal tags products with a wellness outcome ("Better Sleep",
// "Immunity"). Names are unique.
type HealthGoal struct {
	ID          uuid.UUID
	Name        string
	Description string
}
