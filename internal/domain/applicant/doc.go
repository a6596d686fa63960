// Package applicant is the shared contract for applicant-side records and
// their enumerations. It holds no behaviour beyond membership checks so any
// service or storage layer can depend on it.
package applicant
