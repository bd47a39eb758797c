package model

import "github.com/google/uuid"

// Warehouse types
const (
	WarehouseTypeRaw      = 1
	WarehouseTypeSemi     = 2
	WarehouseTypeFinished = 3
	WarehouseTypeGeneral  = 4
)

// Warehouse is flat master data with soft delete
type Warehouse struct {
	BaseModel
	WarehouseCode string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"warehouse_code" validate:"required"`
	WarehouseName string     `gorm:"type:varchar(200);not null" json:"warehouse_name" validate:"required"`
	WarehouseType int        `gorm:"default:4" json:"warehouse_type" validate:"omitempty,oneof=1 2 3 4"`
	Location      string     `gorm:"type:varchar(500)" json:"location"`
	ManagerID     *uuid.UUID `gorm:"type:uuid" json:"manager_id"`
	Manager       *User      `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	ContactPhone  string     `gorm:"type:varchar(20)" json:"contact_phone"`
	Status        int        `gorm:"default:1" json:"status"`
	Remark        string     `gorm:"type:varchar(500)" json:"remark"`
	IsDeleted     bool       `gorm:"default:false;index" json:"is_deleted"`
}

func (Warehouse) TableName() string {
	return "foundation_warehouses"
}
