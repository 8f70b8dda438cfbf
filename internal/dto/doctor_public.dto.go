package dto

import "github.com/BruksfildServices01/clinic-api/internal/models"

type PublicPersonDTO struct {
	FirstName string  `json:"nombres"`
	LastName  string  `json:"apellidos"`
	Phone     *string `json:"telefono"`
	PhotoURL  *string `json:"foto_url"`
}

type PublicSpecialtyDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

// PublicDoctorDTO hides the persona's DNI and address from the website.
type PublicDoctorDTO struct {
	ID          uint                `json:"id"`
	SpecialtyID uint                `json:"especialidad_id"`
	Person      *PublicPersonDTO    `json:"persona"`
	Specialty   *PublicSpecialtyDTO `json:"especialidad"`
}

func NewPublicDoctors(docs []models.Doctor) []PublicDoctorDTO {
	out := make([]PublicDoctorDTO, 0, len(docs))
	for _, d := range docs {
		item := PublicDoctorDTO{ID: d.ID, SpecialtyID: d.SpecialtyID}
		if d.Person != nil {
			item.Person = &PublicPersonDTO{
				FirstName: d.Person.FirstName,
				LastName:  d.Person.LastName,
				Phone:     d.Person.Phone,
				PhotoURL:  d.Person.PhotoURL,
			}
		}
		if d.Specialty != nil {
			item.Specialty = &PublicSpecialtyDTO{ID: d.Specialty.ID, Name: d.Specialty.Name}
		}
		out = append(out, item)
	}
	return out
}
