package request_models

// AddCafeRequest is bound from form values (body or query string).
// Text fields are pointers so an absent field can be told apart from an
// empty one. Amenity flags stay raw strings so the service decides what
// counts as true.
type AddCafeRequest struct {
	Name         *string `form:"name"`
	MapURL       *string `form:"map_url"`
	ImgURL       *string `form:"img_url"`
	Location     *string `form:"location"`
	Seats        *string `form:"seats"`
	HasSockets   string  `form:"has_sockets"`
	HasToilet    string  `form:"has_toilet"`
	HasWifi      string  `form:"has_wifi"`
	CanTakeCalls string  `form:"can_take_calls"`
	CoffeePrice  *string `form:"coffee_price"`
}
