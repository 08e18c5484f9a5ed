package frontpage

// BaseURL is the news portal all genre pages are relative to.
const BaseURL = "https://timesofindia.indiatimes.com"

// Genre represents a news category that can be fetched.
type Genre struct {
	Key  string // short name used for CLI selection, e.g. "sports"
	Name string // display name, e.g. "Sports"
	URL  string // category page to fetch
}

// Validate returns an error if the genre contains invalid fields.
func (g *Genre) Validate() error {
	if g.Key == "" {
		return Errorf(EINVALID, "genre key required")
	}
	if g.Name == "" {
		return Errorf(EINVALID, "genre name required")
	}
	if g.URL == "" {
		return Errorf(EINVALID, "genre URL required")
	}
	return nil
}

// Genres is the static set of supported genres, in menu display order.
// The set is fixed at compile time and not user-extensible.
var Genres = []Genre{
	{Key: "home", Name: "Home (All News)", URL: BaseURL + "/home/headlines"},
	{Key: "sports", Name: "Sports", URL: BaseURL + "/sports/"},
	{Key: "business", Name: "Business", URL: BaseURL + "/business/"},
	{Key: "tech", Name: "Technology", URL: BaseURL + "/technology"},
	{Key: "entertainment", Name: "Entertainment", URL: BaseURL + "/etimes"},
	{Key: "india", Name: "India", URL: BaseURL + "/india/"},
	{Key: "world", Name: "World", URL: BaseURL + "/world/"},
	{Key: "health", Name: "Health", URL: BaseURL + "/life-style/health-fitness"},
	{Key: "life", Name: "Life & Style", URL: BaseURL + "/life-style"},
	{Key: "education", Name: "Education", URL: BaseURL + "/education/"},
}

// GenreByKey returns the genre with the given key.
// Returns ENOTFOUND if no such genre exists.
func GenreByKey(key string) (*Genre, error) {
	for i := range Genres {
		if Genres[i].Key == key {
			return &Genres[i], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "unknown genre %q", key)
}
