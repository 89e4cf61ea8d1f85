package entity

// Client is the account holder, a read-only name pair.
type Client struct {
	FirstName string
	LastName  string
}

func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
