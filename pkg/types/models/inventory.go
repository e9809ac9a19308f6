package model

// Inventory is one row of the inventories table. The id is assigned by the
// database (IDENTITY) and never reused after a delete.
type Inventory struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	Hostname        string `gorm:"type:varchar(255);not null" json:"hostname"`
	Environment     string `gorm:"type:varchar(255)" json:"environment"`
	IPAddress       string `gorm:"column:ipaddress;type:varchar(255)" json:"ipaddress"`
	ApplicationName string `gorm:"column:applicationname;type:varchar(255)" json:"applicationname"`
}

// TableName keeps the table name identical to the original schema.
func (Inventory) TableName() string {
	return "inventories"
}
