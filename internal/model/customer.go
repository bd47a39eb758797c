package model

// Customer types
const (
	CustomerTypeCompany    = 1
	CustomerTypeIndividual = 2
)

// Customer levels
const (
	CustomerLevelKey     = 1
	CustomerLevelNormal  = 2
	CustomerLevelGeneral = 3
)

// Customer is flat master data with soft delete
type Customer struct {
	BaseModel
	CustomerCode  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"customer_code" validate:"required"`
	CustomerName  string `gorm:"type:varchar(200);not null" json:"customer_name" validate:"required"`
	CustomerType  int    `gorm:"default:1" json:"customer_type" validate:"omitempty,oneof=1 2"`
	CustomerLevel int    `gorm:"default:2" json:"customer_level" validate:"omitempty,oneof=1 2 3"`
	Industry      string `gorm:"type:varchar(100)" json:"industry"`
	ContactPerson string `gorm:"type:varchar(50)" json:"contact_person"`
	ContactPhone  string `gorm:"type:varchar(20)" json:"contact_phone"`
	ContactEmail  string `gorm:"type:varchar(255)" json:"contact_email" validate:"omitempty,email"`
	Address       string `gorm:"type:varchar(500)" json:"address"`
	CreditLimit   int64  `gorm:"default:0" json:"credit_limit"`
	CreditDays    int    `gorm:"default:0" json:"credit_days"`
	Status        int    `gorm:"default:1" json:"status"`
	Remark        string `gorm:"type:varchar(500)" json:"remark"`
	IsDeleted     bool   `gorm:"default:false;index" json:"is_deleted"`
}

func (Customer) TableName() string {
	return "foundation_customers"
}
