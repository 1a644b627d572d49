package seed

import (
	"casecare-service/internal/model"
	"casecare-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Run populates an empty database with sample staff, families, providers,
// the relationship lookup table and the built-in form layout. It is a
// no-op once any user exists.
func Run(db *gorm.DB) error {
	log := logger.GetLogger()

	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Debug("Seed skipped, database already populated")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []model.User{
			{Name: "Sarah Johnson", Email: "sarah@example.com", Role: model.RoleAdmin, Team: "Administration", Status: model.UserStatusActive, Avatar: "SJ"},
			{Name: "Michael Chen", Email: "michael@example.com", Role: model.RoleManager, Team: "Family Services", Status: model.UserStatusActive, Avatar: "MC"},
			{Name: "Emily Williams", Email: "emily@example.com", Role: model.RoleCaseManager, Team: "Family Services", Status: model.UserStatusActive, Avatar: "EW"},
			{Name: "David Martinez", Email: "david@example.com", Role: model.RoleCoordinator, Team: "Provider Relations", Status: model.UserStatusActive, Avatar: "DM"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		clients := []model.Client{
			{Name: "The Thompson Family", Contact: "Emily Thompson", Children: 2, Status: model.ClientStatusActive, CaseManagerID: &users[2].ID, LastContact: strPtr("Today")},
			{Name: "The Garcia Family", Contact: "Maria Garcia", Children: 1, Status: model.ClientStatusPending, CaseManagerID: &users[2].ID, LastContact: strPtr("Yesterday")},
			{Name: "The Wilson Family", Contact: "James Wilson", Children: 3, Status: model.ClientStatusActive, CaseManagerID: &users[1].ID, LastContact: strPtr("2 days ago")},
		}
		if err := tx.Create(&clients).Error; err != nil {
			return err
		}

		providers := []model.Provider{
			{Name: "Sunshine Learning Center", Type: model.ProviderTypeCenter, Capacity: 50, Enrollment: 42, Rating: "4.8", Status: model.ProviderStatusVerified, Location: "Downtown"},
			{Name: "Little Stars Home Care", Type: model.ProviderTypeInHome, Capacity: 6, Enrollment: 5, Rating: "4.9", Status: model.ProviderStatusVerified, Location: "Eastside"},
			{Name: "Bright Futures Preschool", Type: model.ProviderTypePreschool, Capacity: 30, Enrollment: 28, Rating: "4.7", Status: model.ProviderStatusVerified, Location: "Westside"},
		}
		if err := tx.Create(&providers).Error; err != nil {
			return err
		}

		if err := seedRelationships(tx); err != nil {
			return err
		}
		if err := seedFormLayout(tx); err != nil {
			return err
		}

		log.Info("Database seeded",
			zap.Int("users", len(users)),
			zap.Int("clients", len(clients)),
			zap.Int("providers", len(providers)))
		return nil
	})
}

func seedRelationships(tx *gorm.DB) error {
	names := []string{"Self", "Spouse", "Partner", "Child", "Parent", "Grandparent", "Sibling", "Other"}
	relationships := make([]model.Relationship, 0, len(names))
	for i, name := range names {
		relationships = append(relationships, model.Relationship{
			Name:         name,
			DisplayOrder: i,
			IsActive:     true,
		})
	}
	return tx.Create(&relationships).Error
}

// seedFormLayout installs the built-in sections and system fields for both
// form types. System fields map onto entity attributes through
// ModelProperty and cannot be deleted afterward.
func seedFormLayout(tx *gorm.DB) error {
	clientInfo := model.FormSection{
		FormType:  model.FormTypeClient,
		Name:      "Family Information",
		Order:     0,
		IsSystem:  true,
		IsVisible: true,
		Icon:      strPtr("people"),
	}
	clientContact := model.FormSection{
		FormType:      model.FormTypeClient,
		Name:          "Contact Details",
		Order:         1,
		IsSystem:      true,
		IsVisible:     true,
		IsCollapsible: true,
		Icon:          strPtr("phone"),
	}
	providerInfo := model.FormSection{
		FormType:  model.FormTypeProvider,
		Name:      "Provider Information",
		Order:     0,
		IsSystem:  true,
		IsVisible: true,
		Icon:      strPtr("building"),
	}
	sections := []*model.FormSection{&clientInfo, &clientContact, &providerInfo}
	for _, s := range sections {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
	}

	clientFields := []model.FormField{
		{FormType: model.FormTypeClient, SectionID: &clientInfo.ID, FieldName: "name", FieldLabel: "Family Name", FieldType: "text", Required: true, Order: 0, Width: model.FieldWidthFull, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Name")},
		{FormType: model.FormTypeClient, SectionID: &clientInfo.ID, FieldName: "contact", FieldLabel: "Primary Contact", FieldType: "text", Required: true, Order: 1, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Contact")},
		{FormType: model.FormTypeClient, SectionID: &clientInfo.ID, FieldName: "children", FieldLabel: "Number of Children", FieldType: "number", Required: true, Order: 2, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Children")},
		{FormType: model.FormTypeClient, SectionID: &clientInfo.ID, FieldName: "status", FieldLabel: "Status", FieldType: "select", Options: strPtr("Active,Pending,Inactive,On Hold"), Required: true, Order: 3, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Status")},
		{FormType: model.FormTypeClient, SectionID: &clientInfo.ID, FieldName: "case_manager", FieldLabel: "Case Manager", FieldType: "user_select", Order: 4, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("CaseManagerId")},
		{FormType: model.FormTypeClient, SectionID: &clientInfo.ID, FieldName: "ssn", FieldLabel: "Social Security Number", FieldType: "ssn", Order: 5, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("SSN"), HelpText: strPtr("Stored encrypted; only the last four digits are shown")},
		{FormType: model.FormTypeClient, SectionID: &clientContact.ID, FieldName: "phone_numbers", FieldLabel: "Phone Numbers", FieldType: "phone_list", Order: 0, Width: model.FieldWidthFull, IsSystem: true, IsVisible: true, ModelProperty: strPtr("PhoneNumbers")},
	}
	providerFields := []model.FormField{
		{FormType: model.FormTypeProvider, SectionID: &providerInfo.ID, FieldName: "name", FieldLabel: "Provider Name", FieldType: "text", Required: true, Order: 0, Width: model.FieldWidthFull, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Name")},
		{FormType: model.FormTypeProvider, SectionID: &providerInfo.ID, FieldName: "type", FieldLabel: "Provider Type", FieldType: "select", Options: strPtr("Center,In-Home,Preschool"), Required: true, Order: 1, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Type")},
		{FormType: model.FormTypeProvider, SectionID: &providerInfo.ID, FieldName: "status", FieldLabel: "Status", FieldType: "select", Options: strPtr("Verified,Pending,Review Needed"), Required: true, Order: 2, Width: model.FieldWidthHalf, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Status")},
		{FormType: model.FormTypeProvider, SectionID: &providerInfo.ID, FieldName: "capacity", FieldLabel: "Capacity", FieldType: "number", Order: 3, Width: model.FieldWidthThird, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Capacity")},
		{FormType: model.FormTypeProvider, SectionID: &providerInfo.ID, FieldName: "enrollment", FieldLabel: "Current Enrollment", FieldType: "number", Order: 4, Width: model.FieldWidthThird, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Enrollment")},
		{FormType: model.FormTypeProvider, SectionID: &providerInfo.ID, FieldName: "location", FieldLabel: "Location", FieldType: "text", Order: 5, Width: model.FieldWidthThird, IsSystem: true, IsVisible: true, ModelProperty: strPtr("Location")},
	}
	if err := tx.Create(&clientFields).Error; err != nil {
		return err
	}
	return tx.Create(&providerFields).Error
}
