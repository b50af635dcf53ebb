package response_models

type CafeResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}
