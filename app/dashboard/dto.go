package dashboard

// Stats summarizes the menu for the admin home page.
type Stats struct {
	Categories       int `json:"categories"`
	Products         int `json:"products"`
	ActiveProducts   int `json:"active_products"`
	InactiveProducts int `json:"inactive_products"`
}
