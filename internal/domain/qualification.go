package domain

type Qualification struct {
	Title       string `yaml:"title"`
	Grade       string `yaml:"grade"`
	Institution string `yaml:"institution"`
	Dates       string `yaml:"dates"`
	Note        string `yaml:"note,omitempty"`
}

type ErpSystem struct {
	Product string `yaml:"product"`
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
	Dates   string `yaml:"dates"`
}
