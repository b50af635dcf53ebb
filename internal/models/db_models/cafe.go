package db_models

type Cafe struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(250);uniqueIndex;not null"`
	MapURL       string  `gorm:"column:map_url;type:varchar(500);not null"`
	ImgURL       string  `gorm:"column:img_url;type:varchar(500);not null"`
	Location     string  `gorm:"type:varchar(250);not null;index"`
	Seats        string  `gorm:"type:varchar(250);not null"`
	HasToilet    bool    `gorm:"not null"`
	HasWifi      bool    `gorm:"not null"`
	HasSockets   bool    `gorm:"not null"`
	CanTakeCalls bool    `gorm:"not null"`
	CoffeePrice  *string `gorm:"type:varchar(250)"` // nil means no price recorded
}
