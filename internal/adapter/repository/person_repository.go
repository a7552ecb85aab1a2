package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// personRepository implements the PersonRepository interface
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &personRepository{db: db}
}

func withProfiles(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ExpertInfo").
		Preload("AssistantInfo").
		Preload("DeptProfInfo").
		Preload("OtherProfInfo").
		Preload("StudentInfo")
}

// Create persists a new person; GORM saves the attached profile row in
// the same transaction through the association.
func (r *personRepository) Create(ctx context.Context, person *entities.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// FindByID retrieves a person with its profile preloaded
func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	var person entities.Person
	err := withProfiles(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// FindByEmail retrieves a person by email
func (r *personRepository) FindByEmail(ctx context.Context, email string) (*entities.Person, error) {
	var person entities.Person
	err := withProfiles(r.db.WithContext(ctx)).
		Where("email = ?", email).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// FindByIDs retrieves the people matching the given ids
func (r *personRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var people []*entities.Person
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&people).Error
	return people, err
}

// List retrieves all people ordered by name
func (r *personRepository) List(ctx context.Context) ([]*entities.Person, error) {
	var people []*entities.Person
	err := withProfiles(r.db.WithContext(ctx)).
		Order("name ASC").
		Find(&people).Error
	return people, err
}

// SearchByName retrieves people whose name contains the query
func (r *personRepository) SearchByName(ctx context.Context, query string) ([]*entities.Person, error) {
	var people []*entities.Person
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&people).Error
	return people, err
}

// ReplaceProfile deletes the profile row of the old type, inserts the
// new one and rewrites the type tag in a single transaction, so the tag
// can never point at a missing or stale profile.
func (r *personRepository) ReplaceProfile(ctx context.Context, person *entities.Person, old entities.PersonType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var oldProfile interface{}
		switch old {
		case entities.PersonTypeExpert:
			oldProfile = &entities.Expert{}
		case entities.PersonTypeAssistant:
			oldProfile = &entities.Assistant{}
		case entities.PersonTypeDeptProf:
			oldProfile = &entities.DeptProf{}
		case entities.PersonTypeOtherProf:
			oldProfile = &entities.OtherProf{}
		case entities.PersonTypeStudent:
			oldProfile = &entities.Student{}
		}
		if oldProfile != nil {
			if err := tx.Where("person_id = ?", person.ID).Delete(oldProfile).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&entities.Person{}).
			Where("id = ?", person.ID).
			Updates(map[string]interface{}{
				"name":     person.Name,
				"gender":   person.Gender,
				"phone":    person.Phone,
				"email":    person.Email,
				"is_admin": person.IsAdmin,
				"type":     person.Type,
			}).Error; err != nil {
			return err
		}

		profile := person.ActiveProfile()
		switch person.Type {
		case entities.PersonTypeExpert:
			return tx.Create(profile.Expert).Error
		case entities.PersonTypeAssistant:
			return tx.Create(profile.Assistant).Error
		case entities.PersonTypeDeptProf:
			return tx.Create(profile.DeptProf).Error
		case entities.PersonTypeOtherProf:
			return tx.Create(profile.OtherProf).Error
		case entities.PersonTypeStudent:
			return tx.Create(profile.Student).Error
		}
		return entities.ErrInvalidPersonType
	})
}

// UpdatePassword sets a new password hash
func (r *personRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Person{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

// Delete removes a person; the profile row goes with it by cascade
func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Person{}, "id = ?", id).Error
}

// Count counts directory entries
func (r *personRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Person{}).Count(&count).Error
	return count, err
}

// StudentIDExists reports whether a student id is already taken
func (r *personRepository) StudentIDExists(ctx context.Context, studentID string, excludePersonID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Student{}).
		Where("student_id = ? AND person_id <> ?", studentID, excludePersonID).
		Count(&count).Error
	return count > 0, err
}
