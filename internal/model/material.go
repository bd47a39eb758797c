package model

// Material types
const (
	MaterialTypeRaw      = 1
	MaterialTypeSemi     = 2
	MaterialTypeFinished = 3
)

// Material is flat master data with soft delete, referencing a category
type Material struct {
	BaseModel
	MaterialCode string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"material_code" validate:"required"`
	MaterialName string            `gorm:"type:varchar(200);not null" json:"material_name" validate:"required"`
	MaterialSpec string            `gorm:"type:varchar(200)" json:"material_spec"`
	CategoryID   *uint             `gorm:"index" json:"category_id"`
	Category     *MaterialCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	MaterialType int               `gorm:"default:1" json:"material_type" validate:"omitempty,oneof=1 2 3"`
	Unit         string            `gorm:"type:varchar(20)" json:"unit"`
	Price        int64             `gorm:"default:0" json:"price"`
	MinStock     float64           `gorm:"default:0" json:"min_stock"`
	MaxStock     float64           `gorm:"default:0" json:"max_stock"`
	SafetyStock  float64           `gorm:"default:0" json:"safety_stock"`
	Barcode      string            `gorm:"type:varchar(100);index" json:"barcode"`
	Status       int               `gorm:"default:1" json:"status"`
	Remark       string            `gorm:"type:varchar(500)" json:"remark"`
	IsDeleted    bool              `gorm:"default:false;index" json:"is_deleted"`
}

func (Material) TableName() string {
	return "foundation_materials"
}
