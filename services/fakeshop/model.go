package fakeshop

import "time"

// Order is an accepted order as the shop keeps it.
type Order struct {
	UID       string
	CreatedAt time.Time
	Payment   string
	Email     string
	Phone     string
	Address   string
	Total     int
	Items     []string
}
