package model

// CartItem is one cart line. The uniqueness key is (ProductID, Size, Color);
// adding an existing key increments Quantity instead of duplicating the line.
type CartItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand,omitempty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Size      int     `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CheckoutForm carries the customer fields collected at checkout.
type CheckoutForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Payment   string `json:"payment"`
}

// FullName joins the name fields for display and order records.
func (f CheckoutForm) FullName() string {
	if f.FirstName == "" {
		return f.LastName
	}
	if f.LastName == "" {
		return f.FirstName
	}
	return f.FirstName + " " + f.LastName
}
