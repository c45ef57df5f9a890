package directory

// Payload is one entry of the service's "results" array, reduced to the
// fields stepboard consumes.
type Payload struct {
	Gender     string   `json:"gender"`
	Name       Name     `json:"name"`
	Location   Location `json:"location"`
	Email      string   `json:"email"`
	Login      Login    `json:"login"`
	Dob        DatedAge `json:"dob"`
	Registered DatedAge `json:"registered"`
	Phone      string   `json:"phone"`
	Picture    Picture  `json:"picture"`
	Nat        string   `json:"nat"`
}

type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type Login struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

// DatedAge is the shape shared by "dob" and "registered".
type DatedAge struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// response is the top-level envelope returned by the service.
type response struct {
	Results []Payload `json:"results"`
	Info    struct {
		Seed    string `json:"seed"`
		Results int    `json:"results"`
	} `json:"info"`
	Error string `json:"error"`
}
