package domain

// CategoryGroup is one entry of the static category taxonomy: a top-level
// category name and its ordered subcategories.
type CategoryGroup struct {
	Name string   `json:"name"`
	Subs []string `json:"subs"`
}

// Categories is the static two-level taxonomy offered by input forms. It is
// fixed for the lifetime of the application and never persisted.
var Categories = []CategoryGroup{
	{Name: "Housing", Subs: []string{"Rent / Mortgage", "Home Maintenance", "Electricity", "Gas", "Water", "Internet", "Mobile Phone", "Home Insurance", "Furniture"}},
	{Name: "Food", Subs: []string{"Groceries", "Restaurants", "Fast Food", "Food Delivery", "Coffee & Snacks", "Work Meals"}},
	{Name: "Transport", Subs: []string{"Fuel", "Public Transport", "Taxi / Ride Sharing", "Parking", "Car Service", "Car Insurance", "Car Taxes", "Car Wash"}},
	{Name: "Utilities & Subscriptions", Subs: []string{"Phone Bill", "TV / Streaming", "Software Subscriptions", "Cloud Services"}},
	{Name: "Health", Subs: []string{"Medicines", "Doctor Visits", "Medical Tests", "Health Insurance", "Gym / Fitness", "Therapy"}},
	{Name: "Education", Subs: []string{"Courses", "Books", "Educational Subscriptions", "Certifications", "Conferences"}},
	{Name: "Clothing", Subs: []string{"Clothing", "Shoes", "Accessories", "Dry Cleaning"}},
	{Name: "Leisure", Subs: []string{"Socializing", "Cinema / Theatre", "Events", "Games", "Hobbies"}},
	{Name: "Travel", Subs: []string{"Flights", "Accommodation", "Vacation Food", "Activities", "Travel Insurance"}},
	{Name: "Tech", Subs: []string{"Electronics", "Tech Accessories", "Apps & Games", "Tech Repairs"}},
	{Name: "Finance", Subs: []string{"Savings", "Investments", "Bank Fees", "Loan Payments", "Interest", "Transfers"}},
	{Name: "Gifts & Special", Subs: []string{"Gifts", "Donations", "Special Occasions"}},
	{Name: "Children", Subs: []string{"Childcare", "School Fees", "Toys", "Kids Clothing", "Extra Activities"}},
	{Name: "Pets", Subs: []string{"Pet Food", "Veterinary", "Pet Toys", "Pet Insurance"}},
	{Name: "Other", Subs: []string{"Unexpected Expenses", "Other"}},
}

// Subcategories returns the ordered subcategories for a top-level category
// name, or nil if the name is not part of the taxonomy.
func Subcategories(top string) []string {
	for _, group := range Categories {
		if group.Name == top {
			return group.Subs
		}
	}
	return nil
}

// DefaultCategoryColor is used for categories without a palette entry.
const DefaultCategoryColor = "#A9A9A9"

// categoryColors maps top-level category names to chart colors. Matching is
// on the top-level name only, unlike budget matching which is exact on the
// full composed category.
var categoryColors = map[string]string{
	"Food":          "#FF6B6B",
	"Transport":     "#4ECDC4",
	"Entertainment": "#45B7D1",
	"Shopping":      "#FFA07A",
	"Health":        "#98D8C8",
	"Utilities":     "#F7DC6F",
	"Rent":          "#BB8FCE",
	"Other":         "#A9A9A9",
}

// ColorFor returns the chart color for a category, looked up by its
// top-level name. Unknown categories map to DefaultCategoryColor.
func ColorFor(c Category) string {
	if color, ok := categoryColors[c.Top]; ok {
		return color
	}
	return DefaultCategoryColor
}
