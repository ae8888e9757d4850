package domain

// Master represents a staff member providing procedures
type Master struct {
	ID               int64
	Name             string
	TelegramUsername *string
	Phone            *string
	Email            *string
}

// Workplace represents a physical station where appointments occur.
// Workplaces with appointment history are deactivated instead of deleted.
type Workplace struct {
	ID       int64
	Name     string
	IsActive bool
}
