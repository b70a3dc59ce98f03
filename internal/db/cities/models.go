package cities

type City struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_cities_name"`
}

func (City) TableName() string {
	return "cities"
}
