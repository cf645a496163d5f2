package layouts

// AppName is the product name shown in the header and page titles.
const AppName = "ControlDoc"

// CalculateTitle builds the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}
