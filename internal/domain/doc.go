// Package domain models raw engine/flight telemetry samples and their
// standardized Pilot Report (PIREP) representation.
//
// # Data Source
//
// Telemetry arrives as discrete batch uploads: delimited text or structured
// key-value rows, one row per engine/flight sample. The upload boundary
// decodes rows into [RawRecord] values; all values are kept as text until the
// validator establishes numeric interpretation. Raw schemas vary by avionics
// vendor, so field presence and type are checked against a configured
// [Schema] rather than assumed.
//
// # PIREP Conventions
//
// Coded line format follows the FAA PIREP segment layout:
//
//	UA /OV KOKC /TM 1510Z /FL085 /TA M02
//
//	UA  — routine report; UUA marks an urgent report. A sample whose
//	      validation produced any out-of-range finding encodes as UUA.
//	/OV — reporting station as a 4-letter ICAO identifier.
//	/TM — observation time, HHMM in 24-hour UTC with a Z suffix.
//	/FL — flight level in hundreds of feet, zero-padded to 3 digits.
//	/TA — outside air temperature in whole degrees Celsius; negative
//	      values carry an M prefix (M02 = -2°C).
//
// Segments that cannot be derived from the sample are omitted.
//
// Observation time format:
//
//	HHMM in 24-hour notation, e.g. "1510" = 15:10 UTC.
//	Three-digit values are zero-padded: "930" → "0930".
//	The date portion comes from the processing clock; combined to produce a
//	full UTC time. Invalid or absent times fall back to the base date.
//
// Unit conversions:
//
//	temp_c       → temp_f        Celsius to Fahrenheit, 1 decimal
//	oil_temp_c   → oil_temp_f    Celsius to Fahrenheit, 1 decimal
//	pressure_psi → pressure_kpa  PSI to kilopascal (×6.894757), 2 decimals
//	altitude_ft  → flight_level  feet to hundreds of feet, nearest integer
//
// All conversions are pure and round half away from zero, so identical input
// produces bit-identical output.
//
// # Data Quality
//
// Per-field issues are data, not control flow: the validator records a
// [ValidationFinding] per problem and transformation continues. A PIREP field
// whose source is missing or malformed takes the configured fallback and is
// marked unknown; an out-of-range source still converts but is marked
// suspect. Unknown and suspect values are excluded from summary aggregates
// and counted as skipped, so garbage input never pollutes batch statistics.
//
// # ID Generation
//
// Entry IDs are deterministic SHA-256 hashes of station|time|field values.
// Reprocessing the same sample yields the same ID, making downstream
// deduplication and fixture comparison trivial. See [generateID].
package domain
