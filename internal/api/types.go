package api

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/moyn-dev/moyn-cli/internal/services"
)

// Visibility controls who can read a space.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

// ValidVisibilities lists the accepted visibility values.
var ValidVisibilities = []string{string(VisibilityPublic), string(VisibilityPrivate), string(VisibilityUnlisted)}

var validVisibilitiesAny = func() []interface{} {
	result := make([]interface{}, len(ValidVisibilities))
	for i, v := range ValidVisibilities {
		result[i] = v
	}
	return result
}()

// Post is the payload published from a local markdown file.
type Post struct {
	Title     string
	Content   string
	Published bool
	Slug      string
	Tags      []string
	// Space routes the post to a space by slug; empty publishes to the profile.
	Space string
}

type createPostRequest struct {
	Post createPost `json:"post"`
}

type createPost struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Published bool     `json:"published"`
	Slug      string   `json:"slug,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// PostSummary is a post as returned by the service.
type PostSummary struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
}

type postResponse struct {
	Post PostSummary `json:"post"`
}

type postsResponse struct {
	Posts []PostSummary `json:"posts"`
}

// Space is a named, visibility-scoped collection of posts.
type Space struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
	AccessToken string `json:"access_token,omitempty"`
	URL         string `json:"url"`
	TokenURL    string `json:"token_url,omitempty"`
}

type spaceResponse struct {
	Space Space `json:"space"`
}

type spacesResponse struct {
	Spaces []Space `json:"spaces"`
}

// SpaceRequest is the input for creating a space. An empty Slug lets the
// service derive one from Name.
type SpaceRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
}

type createSpaceRequest struct {
	Space SpaceRequest `json:"space"`
}

// Validate checks the request before it is sent.
func (r *SpaceRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("is required"),
			validation.Length(1, 100)),
		validation.Field(&r.Visibility,
			validation.Required.Error("is required"),
			validation.In(validVisibilitiesAny...).Error(
				fmt.Sprintf("must be one of %s", strings.Join(ValidVisibilities, ", ")))),
	)
	if err != nil {
		return services.Wrap(services.ErrValidation, "api", "create space", "", err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
