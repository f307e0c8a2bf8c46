package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListPersons(ctx context.Context) ([]Person, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/person/v1", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Person
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPerson(ctx context.Context, id int64) (*Person, error) {
	return c.personRequest(ctx, http.MethodGet, personPath(id), nil)
}

func (c *Client) CreatePerson(ctx context.Context, p Person) (*Person, error) {
	p.Links = nil
	return c.personRequest(ctx, http.MethodPost, "/api/person/v1", p)
}

func (c *Client) UpdatePerson(ctx context.Context, p Person) (*Person, error) {
	p.Links = nil
	return c.personRequest(ctx, http.MethodPut, "/api/person/v1", p)
}

// TogglePerson flips the enabled flag and returns the updated person.
func (c *Client) TogglePerson(ctx context.Context, id int64) (*Person, error) {
	return c.personRequest(ctx, http.MethodPatch, personPath(id), nil)
}

func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, personPath(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// FindPersonsByName matches first and last name substrings. At least one
// must be non-empty.
func (c *Client) FindPersonsByName(ctx context.Context, firstName, lastName string) ([]Person, error) {
	q := url.Values{}
	if firstName != "" {
		q.Set("firstName", firstName)
	}
	if lastName != "" {
		q.Set("lastName", lastName)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/person/v1/findPersonByName?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Person
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchPersons returns one page of people whose first name contains name.
func (c *Client) SearchPersons(ctx context.Context, name, sortDirection string, pageSize, page int) (*Page[Person], error) {
	resp, err := c.doRequest(ctx, http.MethodGet, searchPath("person", name, "name", sortDirection, pageSize, page), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Page[Person]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) personRequest(ctx context.Context, method, path string, body any) (*Person, error) {
	resp, err := c.doJSON(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var p Person
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

func personPath(id int64) string {
	return "/api/person/v1/" + strconv.FormatInt(id, 10)
}

func searchPath(resource, filter, filterParam, sortDirection string, pageSize, page int) string {
	if sortDirection == "" {
		sortDirection = "asc"
	}
	path := fmt.Sprintf("/api/%s/v1/%s/%d/%d", resource, url.PathEscape(sortDirection), pageSize, page)
	if filter != "" {
		path += "?" + url.Values{filterParam: {filter}}.Encode()
	}
	return path
}
