package domain

import "time"

// RoleCitizen is the only role assigned at registration; there is no
// escalation path.
const RoleCitizen = "citizen"

// User is the domain model for citizens who submit reports.
type User struct {
	ID           int64
	Name         string
	Email        string
	NIC          string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
