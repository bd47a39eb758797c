package model

// Supplier levels
const (
	SupplierLevelStrategic = 1
	SupplierLevelQualified = 2
	SupplierLevelBackup    = 3
)

// Supplier is flat master data with soft delete
type Supplier struct {
	BaseModel
	SupplierCode  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"supplier_code" validate:"required"`
	SupplierName  string `gorm:"type:varchar(200);not null" json:"supplier_name" validate:"required"`
	SupplierLevel int    `gorm:"default:2" json:"supplier_level" validate:"omitempty,oneof=1 2 3"`
	Industry      string `gorm:"type:varchar(100)" json:"industry"`
	ContactPerson string `gorm:"type:varchar(50)" json:"contact_person"`
	ContactPhone  string `gorm:"type:varchar(20)" json:"contact_phone"`
	ContactEmail  string `gorm:"type:varchar(255)" json:"contact_email" validate:"omitempty,email"`
	Address       string `gorm:"type:varchar(500)" json:"address"`
	CreditDays    int    `gorm:"default:0" json:"credit_days"`
	Status        int    `gorm:"default:1" json:"status"`
	Remark        string `gorm:"type:varchar(500)" json:"remark"`
	IsDeleted     bool   `gorm:"default:false;index" json:"is_deleted"`
}

func (Supplier) TableName() string {
	return "foundation_suppliers"
}
