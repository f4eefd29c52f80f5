package app

import (
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/engine/report"
)

// jobTemplates maps each job kind to its operator-facing message templates.
// {0} is the resource label; Warning gets {1} = joined diagnostics; Failure
// gets {1} = the first diagnostic's code and {2} = its text.
var jobTemplates = map[domain.JobKind]report.Templates{
	domain.JobAccountAggregation: {
		Success: "Source {0} successfully aggregated",
		Warning: "Warning during aggregation of {0}: {1}",
		Failure: "Aggregation of {0} failed: {1} {2}",
	},
	domain.JobEntitlementAggregation: {
		Success: "Entitlements of {0} successfully aggregated",
		Warning: "Warning during entitlement aggregation of {0}: {1}",
		Failure: "Entitlement aggregation of {0} failed: {1} {2}",
	},
	domain.JobAccountReset: {
		Success: "Accounts of {0} were reset",
		Warning: "Reset of {0} finished with warnings: {1}",
		Failure: "Reset of {0} failed with {1}: {2}",
	},
	domain.JobEntitlementReset: {
		Success: "Entitlements of {0} were reset",
		Warning: "Entitlement reset of {0} finished with warnings: {1}",
		Failure: "Entitlement reset of {0} failed with {1}: {2}",
	},
}

func templatesFor(kind domain.JobKind) report.Templates {
	return jobTemplates[kind]
}
