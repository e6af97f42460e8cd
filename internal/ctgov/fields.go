package ctgov

import "strings"

// Canonical field names recognized by the projection table. These follow
// the classic ClinicalTrials.gov flat field vocabulary that callers are
// used to typing, while the mapping table below locates each one inside
// the nested API v2 study record.
const (
	FieldNCTId                       = "NCTId"
	FieldBriefTitle                  = "BriefTitle"
	FieldOfficialTitle               = "OfficialTitle"
	FieldAcronym                     = "Acronym"
	FieldSecondaryId                 = "SecondaryId"
	FieldOverallStatus               = "OverallStatus"
	FieldStatusVerifiedDate          = "StatusVerifiedDate"
	FieldLastUpdatePostDate          = "LastUpdatePostDate"
	FieldStartDate                   = "StartDate"
	FieldPrimaryCompletionDate       = "PrimaryCompletionDate"
	FieldCompletionDate              = "CompletionDate"
	FieldCondition                   = "Condition"
	FieldKeyword                     = "Keyword"
	FieldStudyType                   = "StudyType"
	FieldPhase                       = "Phase"
	FieldDesignAllocation            = "DesignAllocation"
	FieldDesignInterventionModel     = "DesignInterventionModel"
	FieldDesignPrimaryPurpose        = "DesignPrimaryPurpose"
	FieldDesignMasking               = "DesignMasking"
	FieldInterventionType            = "InterventionType"
	FieldInterventionName            = "InterventionName"
	FieldInterventionDescription     = "InterventionDescription"
	FieldInterventionOtherName       = "InterventionOtherName"
	FieldArmGroupLabel               = "ArmGroupLabel"
	FieldArmGroupType                = "ArmGroupType"
	FieldArmGroupDescription         = "ArmGroupDescription"
	FieldArmGroupInterventionName    = "ArmGroupInterventionName"
	FieldPrimaryOutcomeMeasure       = "PrimaryOutcomeMeasure"
	FieldPrimaryOutcomeDescription   = "PrimaryOutcomeDescription"
	FieldSecondaryOutcomeMeasure     = "SecondaryOutcomeMeasure"
	FieldSecondaryOutcomeDescription = "SecondaryOutcomeDescription"
	FieldEligibilityCriteria         = "EligibilityCriteria"
	FieldHealthyVolunteers           = "HealthyVolunteers"
	FieldSex                         = "Sex"
	FieldMinimumAge                  = "MinimumAge"
	FieldMaximumAge                  = "MaximumAge"
	FieldStdAge                      = "StdAge"
	FieldLocationFacility            = "LocationFacility"
	FieldLocationCity                = "LocationCity"
	FieldLocationState               = "LocationState"
	FieldLocationCountry             = "LocationCountry"
	FieldLocationStatus              = "LocationStatus"
	FieldLeadSponsorName             = "LeadSponsorName"
	FieldLeadSponsorClass            = "LeadSponsorClass"
	FieldCollaboratorName            = "CollaboratorName"
	FieldResponsiblePartyType        = "ResponsiblePartyType"
	FieldBriefSummary                = "BriefSummary"
	FieldDetailedDescription         = "DetailedDescription"
	FieldCentralContactName          = "CentralContactName"
	FieldCentralContactPhone         = "CentralContactPhone"
	FieldCentralContactEMail         = "CentralContactEMail"
	FieldOverallOfficialName         = "OverallOfficialName"
	FieldHasResults                  = "HasResults"
	FieldResultsFirstSubmitDate      = "ResultsFirstSubmitDate"
	FieldResultsFirstPostDate        = "ResultsFirstPostDate"
)

// fieldMapping locates a canonical field inside a study record:
// the protocolSection module that holds it, and the key (or dot-separated
// key chain) within that module.
type fieldMapping struct {
	Module string
	Path   string
}

// fieldMappings is the process-wide projection table. HasResults is absent
// on purpose: it lives at the record's top level, not under any module,
// and the projector special-cases it.
var fieldMappings = map[string]fieldMapping{
	FieldNCTId:         {"identificationModule", "nctId"},
	FieldBriefTitle:    {"identificationModule", "briefTitle"},
	FieldOfficialTitle: {"identificationModule", "officialTitle"},
	FieldAcronym:       {"identificationModule", "acronym"},
	FieldSecondaryId:   {"identificationModule", "secondaryIdInfos"},

	FieldOverallStatus:          {"statusModule", "overallStatus"},
	FieldStatusVerifiedDate:     {"statusModule", "statusVerifiedDate"},
	FieldLastUpdatePostDate:     {"statusModule", "lastUpdatePostDateStruct.date"},
	FieldStartDate:              {"statusModule", "startDateStruct.date"},
	FieldPrimaryCompletionDate:  {"statusModule", "primaryCompletionDateStruct.date"},
	FieldCompletionDate:         {"statusModule", "completionDateStruct.date"},
	FieldResultsFirstSubmitDate: {"statusModule", "resultsFirstSubmitDate"},
	FieldResultsFirstPostDate:   {"statusModule", "resultsFirstPostDateStruct.date"},

	FieldCondition: {"conditionsModule", "conditions"},
	FieldKeyword:   {"conditionsModule", "keywords"},

	FieldStudyType:               {"designModule", "studyType"},
	FieldPhase:                   {"designModule", "phases"},
	FieldDesignAllocation:        {"designModule", "designInfo.allocation"},
	FieldDesignInterventionModel: {"designModule", "designInfo.interventionModel"},
	FieldDesignPrimaryPurpose:    {"designModule", "designInfo.primaryPurpose"},
	FieldDesignMasking:           {"designModule", "designInfo.maskingInfo.masking"},

	FieldInterventionType:        {"armsInterventionsModule", "interventions"},
	FieldInterventionName:        {"armsInterventionsModule", "interventions"},
	FieldInterventionDescription: {"armsInterventionsModule", "interventions"},
	FieldInterventionOtherName:   {"armsInterventionsModule", "interventions"},

	FieldArmGroupLabel:            {"armsInterventionsModule", "armGroups"},
	FieldArmGroupType:             {"armsInterventionsModule", "armGroups"},
	FieldArmGroupDescription:      {"armsInterventionsModule", "armGroups"},
	FieldArmGroupInterventionName: {"armsInterventionsModule", "armGroups"},

	FieldPrimaryOutcomeMeasure:       {"outcomesModule", "primaryOutcomes"},
	FieldPrimaryOutcomeDescription:   {"outcomesModule", "primaryOutcomes"},
	FieldSecondaryOutcomeMeasure:     {"outcomesModule", "secondaryOutcomes"},
	FieldSecondaryOutcomeDescription: {"outcomesModule", "secondaryOutcomes"},

	FieldEligibilityCriteria: {"eligibilityModule", "eligibilityCriteria"},
	FieldHealthyVolunteers:   {"eligibilityModule", "healthyVolunteers"},
	FieldSex:                 {"eligibilityModule", "sex"},
	FieldMinimumAge:          {"eligibilityModule", "minimumAge"},
	FieldMaximumAge:          {"eligibilityModule", "maximumAge"},
	FieldStdAge:              {"eligibilityModule", "stdAges"},

	FieldLocationFacility: {"contactsLocationsModule", "locations"},
	FieldLocationCity:     {"contactsLocationsModule", "locations"},
	FieldLocationState:    {"contactsLocationsModule", "locations"},
	FieldLocationCountry:  {"contactsLocationsModule", "locations"},
	FieldLocationStatus:   {"contactsLocationsModule", "locations"},

	FieldCentralContactName:  {"contactsLocationsModule", "centralContacts"},
	FieldCentralContactPhone: {"contactsLocationsModule", "centralContacts"},
	FieldCentralContactEMail: {"contactsLocationsModule", "centralContacts"},
	FieldOverallOfficialName: {"contactsLocationsModule", "overallOfficials"},

	FieldLeadSponsorName:      {"sponsorCollaboratorsModule", "leadSponsor.name"},
	FieldLeadSponsorClass:     {"sponsorCollaboratorsModule", "leadSponsor.class"},
	FieldCollaboratorName:     {"sponsorCollaboratorsModule", "collaborators"},
	FieldResponsiblePartyType: {"sponsorCollaboratorsModule", "responsibleParty.type"},

	FieldBriefSummary:        {"descriptionModule", "briefSummary"},
	FieldDetailedDescription: {"descriptionModule", "detailedDescription"},
}

// DefaultStudyFields is returned when a caller requests no specific fields.
// Chosen to keep responses useful while trimming the bulkiest modules.
var DefaultStudyFields = []string{
	FieldNCTId, FieldEligibilityCriteria, FieldPrimaryCompletionDate,
	FieldArmGroupLabel, FieldArmGroupType, FieldArmGroupDescription,
	FieldCondition, FieldKeyword, FieldOfficialTitle, FieldBriefTitle, FieldPhase,
	FieldPrimaryOutcomeMeasure, FieldSecondaryOutcomeMeasure,
	FieldInterventionType, FieldInterventionName, FieldInterventionDescription,
	FieldInterventionOtherName, FieldBriefSummary, FieldDetailedDescription,
	FieldLocationFacility, FieldLeadSponsorName, FieldCollaboratorName,
	FieldAcronym, FieldLastUpdatePostDate,
}

// MinimalStudyFields is used by the lightweight NCT ID discovery search.
var MinimalStudyFields = []string{FieldNCTId, FieldBriefTitle, FieldOverallStatus}

// FieldCategory groups canonical fields for the get_available_fields tool.
type FieldCategory struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

// FieldCategories lists all field groups in presentation order.
var FieldCategories = []FieldCategory{
	{
		Name:        "identification",
		Description: "Basic trial identification and titles",
		Fields:      []string{FieldNCTId, FieldBriefTitle, FieldOfficialTitle, FieldAcronym, FieldSecondaryId},
	},
	{
		Name:        "status",
		Description: "Trial status and timeline information",
		Fields:      []string{FieldOverallStatus, FieldStatusVerifiedDate, FieldLastUpdatePostDate, FieldStartDate, FieldPrimaryCompletionDate, FieldCompletionDate},
	},
	{
		Name:        "conditions",
		Description: "Medical conditions and keywords",
		Fields:      []string{FieldCondition, FieldKeyword},
	},
	{
		Name:        "design",
		Description: "Study design and methodology",
		Fields:      []string{FieldStudyType, FieldPhase, FieldDesignAllocation, FieldDesignInterventionModel, FieldDesignPrimaryPurpose, FieldDesignMasking},
	},
	{
		Name:        "interventions",
		Description: "Treatments and interventions being studied",
		Fields:      []string{FieldInterventionType, FieldInterventionName, FieldInterventionDescription, FieldInterventionOtherName},
	},
	{
		Name:        "arms",
		Description: "Study arm and group information",
		Fields:      []string{FieldArmGroupLabel, FieldArmGroupType, FieldArmGroupDescription, FieldArmGroupInterventionName},
	},
	{
		Name:        "outcomes",
		Description: "Primary and secondary outcome measures",
		Fields:      []string{FieldPrimaryOutcomeMeasure, FieldPrimaryOutcomeDescription, FieldSecondaryOutcomeMeasure, FieldSecondaryOutcomeDescription},
	},
	{
		Name:        "eligibility",
		Description: "Patient eligibility and inclusion criteria",
		Fields:      []string{FieldEligibilityCriteria, FieldHealthyVolunteers, FieldSex, FieldMinimumAge, FieldMaximumAge, FieldStdAge},
	},
	{
		Name:        "locations",
		Description: "Study locations and facilities",
		Fields:      []string{FieldLocationFacility, FieldLocationCity, FieldLocationState, FieldLocationCountry, FieldLocationStatus},
	},
	{
		Name:        "sponsors",
		Description: "Sponsoring organizations and collaborators",
		Fields:      []string{FieldLeadSponsorName, FieldLeadSponsorClass, FieldCollaboratorName, FieldResponsiblePartyType},
	},
	{
		Name:        "descriptions",
		Description: "Detailed study descriptions and summaries",
		Fields:      []string{FieldBriefSummary, FieldDetailedDescription},
	},
	{
		Name:        "contacts",
		Description: "Study contact information",
		Fields:      []string{FieldCentralContactName, FieldCentralContactPhone, FieldCentralContactEMail, FieldOverallOfficialName},
	},
	{
		Name:        "results",
		Description: "Study results and publications",
		Fields:      []string{FieldHasResults, FieldResultsFirstSubmitDate, FieldResultsFirstPostDate},
	},
}

// fieldAliases resolves common user shorthand to canonical fields.
// Keys are lowercase with all whitespace removed; a single alias may
// expand to more than one canonical field.
var fieldAliases = map[string][]string{
	"conditions":       {FieldCondition},
	"intervention":     {FieldInterventionName},
	"interventions":    {FieldInterventionName},
	"interventionname": {FieldInterventionName},
	"phase":            {FieldPhase},
	"phases":           {FieldPhase},
	"sponsor":          {FieldLeadSponsorName, FieldCollaboratorName},
	"sponsors":         {FieldLeadSponsorName, FieldCollaboratorName},
	"leadsponsor":      {FieldLeadSponsorName},
	"leadsponsorname":  {FieldLeadSponsorName},
	"collaborator":     {FieldCollaboratorName},
	"collaborators":    {FieldCollaboratorName},
	"collaboratorname": {FieldCollaboratorName},
	"hasresults":       {FieldHasResults},
	"nctid":            {FieldNCTId},
	"brieftitle":       {FieldBriefTitle},
}

// NormalizeFields maps user-supplied field tokens onto the canonical field
// vocabulary. Matching is case- and whitespace-insensitive; aliases may
// expand to several canonical fields ("sponsor" covers both the lead
// sponsor and collaborators). Tokens with no alias pass through trimmed,
// so already-canonical names survive unchanged and unknown names are left
// for the projector to drop. The result preserves first-seen order and
// contains no duplicates. This function never fails.
func NormalizeFields(fields []string) []string {
	result := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, raw := range fields {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		key := strings.ToLower(strings.Join(strings.Fields(token), ""))
		if canonical, ok := fieldAliases[key]; ok {
			for _, name := range canonical {
				add(name)
			}
			continue
		}

		add(token)
	}

	return result
}
