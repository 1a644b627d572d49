package service

import (
	"errors"
	"strings"
	"unicode"

	"casecare-service/internal/model"
	"casecare-service/pkg/encryption"

	"gorm.io/gorm"
)

// ClientService manages client families and their custom field values
type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// ListAll returns all clients ordered by name with their case manager
func (s *ClientService) ListAll() ([]model.Client, error) {
	var clients []model.Client
	err := s.db.
		Preload("CaseManager").
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

// ListByCaseManager returns the clients assigned to one case manager
func (s *ClientService) ListByCaseManager(caseManagerID string) ([]model.Client, error) {
	var clients []model.Client
	err := s.db.
		Preload("CaseManager").
		Where("case_manager_id = ?", caseManagerID).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

// GetByID returns a single client
func (s *ClientService) GetByID(id string) (*model.Client, error) {
	var client model.Client
	err := s.db.Preload("CaseManager").First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Create persists a new client and, when supplied, its custom field
// values. The base row and the values are two sequential writes; a crash
// in between leaves the client without custom values, which callers
// tolerate because values are supplementary.
func (s *ClientService) Create(client *model.Client, customFields map[string]string) error {
	if client.SSN != "" {
		s.encryptSSN(client, client.SSN)
	}

	if err := s.db.Create(client).Error; err != nil {
		return err
	}

	if customFields != nil {
		return s.SaveCustomValues(client.ID, customFields)
	}
	return nil
}

// Update overwrites the mutable attributes of a client. A non-empty SSN in
// the patch replaces the stored ciphertext; an empty one leaves it alone.
func (s *ClientService) Update(id string, updates *model.Client) (*model.Client, error) {
	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	client.Name = updates.Name
	client.Contact = updates.Contact
	client.Children = updates.Children
	client.Status = updates.Status
	client.LastContact = updates.LastContact
	client.CaseManagerID = updates.CaseManagerID
	client.CaseManager = nil
	if updates.SSN != "" {
		s.encryptSSN(client, updates.SSN)
	}

	if err := s.db.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client and everything hanging off it in one transaction
func (s *ClientService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&model.ClientCustomField{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&model.HouseholdMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&model.PhoneNumber{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Client{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetCustomValues returns the client's custom field values keyed by field
// name. A value whose field definition disappeared is keyed by the raw
// field id instead.
func (s *ClientService) GetCustomValues(clientID string) (map[string]string, error) {
	var rows []model.ClientCustomField
	err := s.db.
		Preload("Field").
		Where("client_id = ?", clientID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		key := row.FieldID
		if row.Field != nil {
			key = row.Field.FieldName
		}
		values[key] = row.Value
	}
	return values, nil
}

// SaveCustomValues replaces all custom field values for a client with the
// given mapping. Keys that match no client form field are dropped. Callers
// must always pass the complete set: an empty mapping clears everything.
func (s *ClientService) SaveCustomValues(clientID string, customFields map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&model.ClientCustomField{}).Error; err != nil {
			return err
		}

		var formFields []model.FormField
		if err := tx.Where("form_type = ?", model.FormTypeClient).Find(&formFields).Error; err != nil {
			return err
		}

		byName := make(map[string]string, len(formFields))
		for _, f := range formFields {
			byName[f.FieldName] = f.ID
		}

		for fieldName, value := range customFields {
			fieldID, ok := byName[fieldName]
			if !ok {
				continue
			}
			row := model.ClientCustomField{
				ClientID: clientID,
				FieldID:  fieldID,
				Value:    value,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ClientService) encryptSSN(client *model.Client, plain string) {
	client.SSN = encryption.Encrypt(plain)
	client.SSNLast4 = ssnLastFour(plain)
	client.MaskedSSN = ""
	if client.SSNLast4 != "" {
		client.MaskedSSN = "***-**-" + client.SSNLast4
	}
}

func ssnLastFour(ssn string) string {
	var b strings.Builder
	for _, r := range ssn {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}
