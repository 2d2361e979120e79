package models

// APIInfo is the API documentation metadata served at /v3/api-docs
type APIInfo struct {
	OpenAPI string     `json:"openapi"`
	Info    APIDetails `json:"info"`
	Servers []Server   `json:"servers"`
}

type APIDetails struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Version     string  `json:"version"`
	Contact     Contact `json:"contact"`
	License     License `json:"license"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}
