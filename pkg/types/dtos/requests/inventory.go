package request

// CreateInventory is the POST /inventories payload. Only hostname is
// required; the remaining fields default to empty strings.
type CreateInventory struct {
	Hostname        string `json:"hostname" validate:"required"`
	Environment     string `json:"environment"`
	IPAddress       string `json:"ipaddress"`
	ApplicationName string `json:"applicationname"`
}

// ReplaceInventory is the PUT /inventories/:id payload. A replace overwrites
// every field, so all four keys must be present in the body. Pointer fields
// distinguish a missing key from an empty value.
type ReplaceInventory struct {
	Hostname        *string `json:"hostname" validate:"required"`
	Environment     *string `json:"environment" validate:"required"`
	IPAddress       *string `json:"ipaddress" validate:"required"`
	ApplicationName *string `json:"applicationname" validate:"required"`
}
