package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
)

// columns maps result column names to scan destinations. A name listed more
// than once is filled in select order, which is how "reservations.*,
// properties.*" resolves its two id columns. Unknown columns are discarded.
type columns map[string][]any

func (c columns) scan(row pgx.CollectableRow) error {
	fds := row.FieldDescriptions()
	dest := make([]any, len(fds))
	used := make(map[string]int, len(fds))
	for i, fd := range fds {
		targets := c[fd.Name]
		if n := used[fd.Name]; n < len(targets) {
			dest[i] = targets[n]
			used[fd.Name] = n + 1
			continue
		}
		dest[i] = new(any)
	}
	return row.Scan(dest...)
}

// nullText scans a nullable text column into a plain string.
type nullText struct{ dst *string }

func (t nullText) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.dst = ""
	case string:
		*t.dst = v
	case []byte:
		*t.dst = string(v)
	}
	return nil
}

func userColumns(u *entity.User) columns {
	return columns{
		"id":       {&u.ID},
		"name":     {&u.Name},
		"email":    {&u.Email},
		"password": {&u.Password},
	}
}

func propertyColumns(p *entity.Property) columns {
	return columns{
		"id":                  {&p.ID},
		"owner_id":            {&p.OwnerID},
		"title":               {&p.Title},
		"description":         {&nullText{&p.Description}},
		"thumbnail_photo_url": {&p.ThumbnailPhotoURL},
		"cover_photo_url":     {&p.CoverPhotoURL},
		"cost_per_night":      {&p.CostPerNight},
		"parking_spaces":      {&p.ParkingSpaces},
		"number_of_bathrooms": {&p.NumberOfBathrooms},
		"number_of_bedrooms":  {&p.NumberOfBedrooms},
		"country":             {&p.Country},
		"street":              {&p.Street},
		"city":                {&p.City},
		"province":            {&p.Province},
		"post_code":           {&p.PostCode},
		"active":              {&p.Active},
		"average_rating":      {&p.AverageRating},
	}
}

// reservationColumns lists reservation targets ahead of the property ones so
// the first id column lands on the reservation.
func reservationColumns(r *entity.Reservation) columns {
	cols := columns{
		"id":          {&r.ID},
		"start_date":  {&r.StartDate},
		"end_date":    {&r.EndDate},
		"property_id": {&r.PropertyID},
		"guest_id":    {&r.GuestID},
	}
	for name, targets := range propertyColumns(&r.Property) {
		cols[name] = append(cols[name], targets...)
	}
	return cols
}

func rowToUser(row pgx.CollectableRow) (entity.User, error) {
	var u entity.User
	err := userColumns(&u).scan(row)
	return u, err
}

func rowToProperty(row pgx.CollectableRow) (entity.Property, error) {
	var p entity.Property
	err := propertyColumns(&p).scan(row)
	return p, err
}

func rowToReservation(row pgx.CollectableRow) (entity.Reservation, error) {
	var r entity.Reservation
	err := reservationColumns(&r).scan(row)
	return r, err
}
