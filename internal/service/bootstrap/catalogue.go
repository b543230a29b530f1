package bootstrap

import "github.com/heartmarshall/default-registry/internal/domain"

type reasonSeed struct {
	typ         domain.ApplicationType
	description string
	order       int
}

// defaultReasons is the built-in reason catalogue.
var defaultReasons = []reasonSeed{
	{domain.ApplicationTypeDefault, "Two or more position shortfalls within 6 months for technical or funding reasons", 1},
	{domain.ApplicationTypeDefault, "Two or more post-trade cancellations within 6 months", 2},
	{domain.ApplicationTypeDefault, "Principal or obligations unpaid or paid late under the contract (excluding grace period)", 3},
	{domain.ApplicationTypeDefault, "Cross-default triggered by a default of a group member", 4},
	{domain.ApplicationTypeDefault, "Distressed debt exchange or restructuring by extension", 5},
	{domain.ApplicationTypeDefault, "Filed for bankruptcy protection or placed under legal receivership", 6},
	{domain.ApplicationTypeDefault, "Default at another financial institution or external rating at default grade", 7},

	{domain.ApplicationTypeRebirth, "Released after normal settlement", 1},
	{domain.ApplicationTypeRebirth, "Default cured at another financial institution or external rating above default grade", 2},
	{domain.ApplicationTypeRebirth, "Provisioning ratio below the configured threshold", 3},
	{domain.ApplicationTypeRebirth, "Principal and interest paid on time for 12 consecutive months", 4},
	{domain.ApplicationTypeRebirth, "Overdue amounts repaid and 12 months of timely payments with improved repayment capacity", 5},
	{domain.ApplicationTypeRebirth, "Related group that caused the default has recovered; cross-default released", 6},
}
