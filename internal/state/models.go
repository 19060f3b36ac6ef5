package state

import "time"

// Task is owned by the Store. After creation the only field that ever
// changes is Done (via toggle), which also stamps UpdatedAt.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Urgency   float64    `json:"urgency"`
	Effort    float64    `json:"effort"`
	Impact    float64    `json:"impact"`
	Weight    int        `json:"weight"`
	Date      *string    `json:"date"`
	Time      *string    `json:"time"`
	Category  string     `json:"category"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FocusSession is append-only; it is never mutated after creation.
type FocusSession struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Minutes     float64   `json:"minutes"`
	EnergyStart *float64  `json:"energyStart"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskInput carries the client-supplied fields for a new task.
type TaskInput struct {
	Title    string
	Urgency  float64
	Effort   float64
	Impact   float64
	Date     *string
	Time     *string
	Category string
}

// FocusInput carries the client-supplied fields for a new focus session.
type FocusInput struct {
	Title       string
	Minutes     float64
	EnergyStart *float64
}
