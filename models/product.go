package models

type Product struct {
	ID       uint    `gorm:"primary_key" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	IconURL  *string `gorm:"column:icon_url" json:"icon_url"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
}

// DefaultProducts is the catalog the shop opens with. Seeded once when the
// products table is empty.
var DefaultProducts = []Product{
	{Name: "Cups (BIG)", Price: 40, IsActive: true},
	{Name: "Cups (Small)", Price: 25, IsActive: true},
	{Name: "Chocofiest", Price: 50, IsActive: true},
	{Name: "Chocobar (Big)", Price: 45, IsActive: true},
	{Name: "Chocobar (Small)", Price: 30, IsActive: true},
	{Name: "Rajberry & Mango Duet", Price: 60, IsActive: true},
	{Name: "Lollies", Price: 20, IsActive: true},
	{Name: "Punjabi Kufi", Price: 70, IsActive: true},
	{Name: "Big Cone", Price: 55, IsActive: true},
	{Name: "Small Cone", Price: 35, IsActive: true},
	{Name: "Small Cone-V", Price: 40, IsActive: true},
	{Name: "Sunday Refill", Price: 80, IsActive: true},
	{Name: "Swinger (Big) / Kasata", Price: 90, IsActive: true},
	{Name: "Swinger (Small)", Price: 65, IsActive: true},
	{Name: "Jumbo Refill", Price: 100, IsActive: true},
	{Name: "Black Forest", Price: 120, IsActive: true},
	{Name: "Mutka Kulfi", Price: 75, IsActive: true},
	{Name: "Balls", Price: 30, IsActive: true},
	{Name: "Bulks", Price: 500, IsActive: true},
}
