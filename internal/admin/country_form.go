package admin

import (
	"backoffice/internal/apiclient"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// CountryForm is the add/edit model for countries. Countries always submit
// multipart so the optional header image and video can be set or cleared.
type CountryForm struct {
	ID          int64
	Name        string
	Code        string
	HeaderImage FileField
	Video       FileField
}

func CountryFormFromModel(c models.Country) CountryForm {
	return CountryForm{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		HeaderImage: FileField{Existing: c.HeaderImage},
		Video:       FileField{Existing: c.Video},
	}
}

func CountryFormResource() Resource[CountryForm] {
	return Resource[CountryForm]{
		Label:    "Country",
		Endpoint: "/api/countries/",
		ID:       func(f CountryForm) int64 { return f.ID },
		Defaults: func() CountryForm { return CountryForm{} },
		Validate: func(f CountryForm) error {
			if f.Name == "" {
				return domain.ValidationError{Field: "name", Msg: "Country name is required"}
			}
			return nil
		},
		EncodeForm: func(f CountryForm) (*apiclient.Form, error) {
			form := &apiclient.Form{}
			form.Set("name", f.Name)
			if f.Code != "" {
				form.Set("code", f.Code)
			}
			f.HeaderImage.encode(form, "header_image")
			f.Video.encode(form, "video")
			return form, nil
		},
	}
}

// UnmarshalJSON lets the form controller seed edit mode straight from the
// country detail response.
func (f *CountryForm) UnmarshalJSON(data []byte) error {
	var c models.Country
	if err := unmarshalModel(data, &c); err != nil {
		return err
	}
	*f = CountryFormFromModel(c)
	return nil
}
