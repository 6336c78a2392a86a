package model

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Type string `json:"type" gorm:"size:255;not null"` // display label, e.g. "Science"
}
