// internal/model/vendor.go
package model

// VendorBaseURL is the collection path vendors are served under.
const VendorBaseURL = "/api/v1/vendors"

type Vendor struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// VendorDTO is the wire shape of a vendor.
type VendorDTO struct {
	Name      string `json:"name" validate:"max=255"`
	VendorURL string `json:"vendor_url,omitempty"`
}

type VendorListDTO struct {
	Vendors []VendorDTO `json:"vendors"`
}
