// Package seed provides the default catalog, categories and operator
// accounts the terminal starts with.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"pos-terminal/internal/domain"
)

type productSeed struct {
	ID         string
	Name       string
	CategoryID string
	Price      string
	Stock      int
	SKU        string
}

type operatorSeed struct {
	ID       string
	Username string
	Name     string
	Role     string
	Password string
}

var categorySeeds = []domain.Category{
	{ID: "cat1", Name: "Beverages", Color: "hsl(200 70% 50%)"},
	{ID: "cat2", Name: "Snacks", Color: "hsl(35 90% 55%)"},
	{ID: "cat3", Name: "Dairy", Color: "hsl(280 60% 55%)"},
	{ID: "cat4", Name: "Bakery", Color: "hsl(15 80% 55%)"},
	{ID: "cat5", Name: "Produce", Color: "hsl(130 60% 45%)"},
	{ID: "cat6", Name: "Household", Color: "hsl(50 80% 50%)"},
}

var productSeeds = []productSeed{
	{ID: "p1", Name: "Coca Cola 500ml", CategoryID: "cat1", Price: "1.50", Stock: 120, SKU: "BEV001"},
	{ID: "p2", Name: "Orange Juice 1L", CategoryID: "cat1", Price: "3.25", Stock: 45, SKU: "BEV002"},
	{ID: "p3", Name: "Mineral Water 500ml", CategoryID: "cat1", Price: "0.99", Stock: 200, SKU: "BEV003"},
	{ID: "p4", Name: "Green Tea Bottle", CategoryID: "cat1", Price: "2.10", Stock: 65, SKU: "BEV004"},
	{ID: "p5", Name: "Energy Drink", CategoryID: "cat1", Price: "2.99", Stock: 80, SKU: "BEV005"},
	{ID: "p6", Name: "Potato Chips", CategoryID: "cat2", Price: "2.49", Stock: 90, SKU: "SNK001"},
	{ID: "p7", Name: "Chocolate Bar", CategoryID: "cat2", Price: "1.75", Stock: 150, SKU: "SNK002"},
	{ID: "p8", Name: "Mixed Nuts 200g", CategoryID: "cat2", Price: "4.99", Stock: 40, SKU: "SNK003"},
	{ID: "p9", Name: "Granola Bar", CategoryID: "cat2", Price: "1.25", Stock: 100, SKU: "SNK004"},
	{ID: "p10", Name: "Whole Milk 1L", CategoryID: "cat3", Price: "2.15", Stock: 60, SKU: "DRY001"},
	{ID: "p11", Name: "Cheddar Cheese", CategoryID: "cat3", Price: "3.99", Stock: 35, SKU: "DRY002"},
	{ID: "p12", Name: "Greek Yogurt", CategoryID: "cat3", Price: "1.89", Stock: 55, SKU: "DRY003"},
	{ID: "p13", Name: "Butter 250g", CategoryID: "cat3", Price: "2.75", Stock: 42, SKU: "DRY004"},
	{ID: "p14", Name: "Sourdough Bread", CategoryID: "cat4", Price: "3.50", Stock: 25, SKU: "BAK001"},
	{ID: "p15", Name: "Croissant", CategoryID: "cat4", Price: "1.99", Stock: 30, SKU: "BAK002"},
	{ID: "p16", Name: "Banana (per lb)", CategoryID: "cat5", Price: "0.69", Stock: 100, SKU: "PRD001"},
	{ID: "p17", Name: "Apple Red", CategoryID: "cat5", Price: "0.89", Stock: 85, SKU: "PRD002"},
	{ID: "p18", Name: "Tomatoes (per lb)", CategoryID: "cat5", Price: "1.49", Stock: 70, SKU: "PRD003"},
	{ID: "p19", Name: "Paper Towels", CategoryID: "cat6", Price: "4.50", Stock: 50, SKU: "HH001"},
	{ID: "p20", Name: "Dish Soap", CategoryID: "cat6", Price: "3.25", Stock: 40, SKU: "HH002"},
}

var operatorSeeds = []operatorSeed{
	{ID: "1", Username: "admin", Name: "John Manager", Role: domain.RoleAdmin, Password: "admin123"},
	{ID: "2", Username: "cashier", Name: "Sarah Cashier", Role: domain.RoleCashier, Password: "cashier123"},
	{ID: "3", Username: "cashier2", Name: "Mike Cashier", Role: domain.RoleCashier, Password: "cashier123"},
}

// Categories returns the default category list.
func Categories() []domain.Category {
	return append([]domain.Category(nil), categorySeeds...)
}

// Products returns the default catalog.
func Products() ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(productSeeds))
	for _, s := range productSeeds {
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			return nil, fmt.Errorf("seed product %s: parse price: %w", s.SKU, err)
		}
		products = append(products, domain.Product{
			ID:         s.ID,
			Name:       s.Name,
			CategoryID: s.CategoryID,
			Price:      price,
			Stock:      s.Stock,
			SKU:        s.SKU,
		})
	}
	return products, nil
}

// Operators returns the default operator accounts with freshly hashed
// passwords.
func Operators() ([]domain.Operator, error) {
	operators := make([]domain.Operator, 0, len(operatorSeeds))
	for _, s := range operatorSeeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed operator %s: hash password: %w", s.Username, err)
		}
		operators = append(operators, domain.Operator{
			ID:           s.ID,
			Username:     s.Username,
			Name:         s.Name,
			Role:         s.Role,
			PasswordHash: string(hash),
		})
	}
	return operators, nil
}
