// internal/model/customer.go
package model

// CustomerBaseURL is the collection path customers are served under.
const CustomerBaseURL = "/api/v1/customers"

type Customer struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// CustomerDTO is the wire shape of a customer. CustomerURL is derived from the
// id on every read and ignored on writes.
type CustomerDTO struct {
	FirstName   string `json:"firstname" validate:"max=255"`
	LastName    string `json:"lastname" validate:"max=255"`
	CustomerURL string `json:"customer_url,omitempty"`
}

type CustomerListDTO struct {
	Customers []CustomerDTO `json:"customers"`
}
