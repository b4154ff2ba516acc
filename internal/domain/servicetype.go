package domain

// ServiceType enumerates the services offered on the booking form.
// The values are the exact Polish labels shown to customers; the same
// constants are used in the submission payload, in storage and in the
// admin panel, so the mapping exists in one place only.
type ServiceType string

const (
	ServiceWaterInstallations ServiceType = "Instalacje wodne"
	ServiceBathroomRenovation ServiceType = "Remont łazienki"
	ServiceEmergency          ServiceType = "Awaria"
	ServiceMaintenance        ServiceType = "Konserwacja"
	ServiceEstimate           ServiceType = "Wycena"
	ServiceOther              ServiceType = "Inne"
)

// ServiceTypes lists every offered service in form order.
var ServiceTypes = []ServiceType{
	ServiceWaterInstallations,
	ServiceBathroomRenovation,
	ServiceEmergency,
	ServiceMaintenance,
	ServiceEstimate,
	ServiceOther,
}

// ParseServiceType validates a service string coming from the API.
func ParseServiceType(s string) (ServiceType, bool) {
	for _, st := range ServiceTypes {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// String returns the customer-facing label.
func (s ServiceType) String() string {
	return string(s)
}
