package country

// Built-in dataset used when no remote store is configured, and as the
// source for the seed command. Content is curated by the support team;
// requirement wording is shown to visitors verbatim.

// globalDriveURL is the shared document-drive link used by checklist and
// download entries that have no dedicated file yet.
const globalDriveURL = "https://drive.google.com/file/d/1obqfHNBQEJxYEAPhgGVZ0yLevF1B4U7f/view"

const commonPhotoSpecs = "Two recent passport size photos (35mm X 45mm) with white background. " +
	"Face coverage must be 70% - 80% and the photo must not be older than 6 months."

func defaultJournalist() VisaCategoryDetails {
	return VisaCategoryDetails{
		Description: "Visa for media professionals and journalists on assignment.",
		Requirements: []string{
			"Valid Passport with 6 months validity from travel date.",
			"Official Press Credentials issued by a recognized media authority.",
			"Original Invitation Letter from the host media organization in the destination country.",
			"Detailed Assignment Portfolio containing previous international work.",
			"Letter from the Editor-in-Chief confirming the scope and duration of the assignment.",
			"Equipment list with serial numbers for temporary import customs clearance.",
		},
		Process:     []string{"Accreditation with local media council", "Consular Interview", "Dossier Stamping"},
		Formalities: []string{"Local press pass collection upon arrival", "Mandatory orientation session"},
		Duration:    "Assignment duration",
		Cost:        "$150 USD",
		Checklists: []ChecklistItem{
			{Label: "Journalist Checklist", URL: globalDriveURL},
			{Label: "Equipment Import Form", URL: globalDriveURL},
		},
		Downloads: []DownloadItem{
			{Label: "Master Journalist Submission Guide", URL: globalDriveURL, Description: "Detailed guide for media personnel"},
			{Label: "Media Equipment Declaration", URL: globalDriveURL, Description: "Official customs form"},
		},
		PhotoSpecs: commonPhotoSpecs,
	}
}

func defaultLongTerm() VisaCategoryDetails {
	return VisaCategoryDetails{
		Description: "Long-term stay visa for various residential purposes.",
		Requirements: []string{
			"Registered Lease Agreement as Proof of Accommodation (minimum 12 months).",
			"Personal Bank Statements for the last 12 consecutive months showing stable liquidity.",
			"National Identity Proof verified by notary.",
			"Clean Criminal Record Certificate (Apostilled/Notarized from Home Ministry).",
			"Medical Fitness Certificate from an Embassy-approved hospital.",
			"Proof of relationship (Marriage/Birth certificate) if applying as a dependent.",
		},
		Process:     []string{"Consular submission", "Document verification protocol", "Inter-agency background check"},
		Formalities: []string{"Local police reporting within 14 days of entry", "Residence permit issuance"},
		Duration:    "1 - 5 Years",
		Cost:        "$200+ USD",
		Checklists: []ChecklistItem{
			{Label: "Long Stay Checklist", URL: globalDriveURL},
			{Label: "Proof of Funds Annexure", URL: globalDriveURL},
			{Label: "Accommodation Declaration", URL: globalDriveURL},
		},
		Downloads: []DownloadItem{
			{Label: "Long Term Residence Manual", URL: globalDriveURL, Description: "Lifecycle of long-stay applications"},
			{Label: "Financial Sustainability Annex", URL: globalDriveURL, Description: "Rules for proof of funds"},
		},
		PhotoSpecs: commonPhotoSpecs,
	}
}

// builtinCountries returns a fresh copy of the bundled table so callers
// can mutate their view without corrupting later reads.
func builtinCountries() map[string]CountryData {
	return map[string]CountryData{
		"india": {
			Name:        "India",
			Code:        "IN",
			Coordinates: &Coordinates{Top: 44, Left: 69},
			Visa: map[string]VisaCategoryDetails{
				CategoryShortTerm: {
					Description:  "Tourist Visa for recreation and sightseeing.",
					Requirements: []string{"Passport (6 months validity)", "Passport Photo", "Return Ticket"},
					Process:      []string{"Fill online application", "Submit biometrics"},
					Formalities:  []string{"Immigration check upon arrival"},
					Duration:     "30 Days to 5 Years",
					Cost:         "$25 - $80 USD",
					Checklists: []ChecklistItem{
						{Label: "Tourist Checklist", URL: globalDriveURL},
						{Label: "Health Declaration", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "India e-Visa Guide", URL: "https://indianvisaonline.gov.in/", IsExternal: true, Description: "Official e-Visa portal redirect"},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryWorkPermit: {
					Description:  "Employment Visa for skilled professionals.",
					Requirements: []string{"Employment Contract", "Company Registration Proof"},
					Process:      []string{"Employer files petition", "Applicant visits embassy"},
					Formalities:  []string{"FRRO Registration"},
					Duration:     "1 Year",
					Cost:         "$100+ USD",
					Checklists: []ChecklistItem{
						{Label: "Work Visa Checklist", URL: globalDriveURL},
						{Label: "Employer Undertaking", URL: globalDriveURL},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryStudent: {
					Description:  "Student Visa for academic pursuits.",
					Requirements: []string{"Admission Letter", "Financial Proof"},
					Process:      []string{"Consulate interview"},
					Formalities:  []string{"University registration"},
					Duration:     "Course Duration",
					Cost:         "$80 USD",
					Checklists: []ChecklistItem{
						{Label: "Student Checklist", URL: globalDriveURL},
						{Label: "Sponsorship Letter", URL: globalDriveURL},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryLongTerm:   defaultLongTerm(),
				CategoryJournalist: defaultJournalist(),
			},
		},
		"japan": {
			Name:        "Japan",
			Code:        "JP",
			Coordinates: &Coordinates{Top: 36, Left: 86},
			Visa: map[string]VisaCategoryDetails{
				CategoryShortTerm: {
					Description: "Standard tourist visa for sightseeing and visiting friends in Japan.",
					Requirements: []string{
						"Original passport valid for minimum six months from the return date with three blank pages + old passport if any.",
						"Two photographs, size 45mm X 35mm, white background, matte finish, 80% face coverage.",
						"Typed visa application form duly filled & signed by the applicant. Hand-written forms are not accepted.",
						"Covering letter from the company in original, addressed to the Visa Officer, Consulate General of Japan.",
						"Formal Letter of Guarantee from the inviting company or individual in Japan.",
						"Detailed day to day schedule (Koteihyo) as per flight ticket itinerary, with hotel names and contacts for every day.",
						"Copy of ITR acknowledgment returns for the last three assessment years.",
						"Confirmed round trip air ticket matching the schedule and covering letter dates.",
						"Personal bank statement for the last 6 months with original bank stamp on every page.",
						"Travel dates on all documents must match with zero discrepancies or time gaps.",
					},
					Process:     []string{"Document vetting at Flyconnect", "VFS/Consulate submission", "Protocol Verification", "Final Stamping"},
					Formalities: []string{"Visit Japan Web (VJW) digital registration for Immigration & Customs"},
					Duration:    "90 Days",
					Cost:        "₹6,450 Total Protocol Fee",
					Checklists: []ChecklistItem{
						{Label: "Tourist Visa Checklist", URL: globalDriveURL},
						{Label: "Business Visa Checklist", URL: globalDriveURL},
						{Label: "Visit Friends/Family Checklist", URL: globalDriveURL},
						{Label: "Schedule of Stay (Koteihyo) Template", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "Japan Visa Application Form (PDF)", URL: "https://www.mofa.go.jp/files/000124525.pdf", IsExternal: true, Description: "Official MOFA application template"},
						{Label: "Flyconnect Master Submission Guide", URL: globalDriveURL, Description: "Internal protocol for error-free filing"},
					},
					PhotoSpecs: "Size 45mm X 35mm, white background, matte finish, 80% face coverage. High resolution, strictly no borders or glares on glasses.",
				},
				CategoryWorkPermit: {
					Description: "Visa for highly skilled professionals based on a valid Certificate of Eligibility (COE).",
					Requirements: []string{
						"Original Certificate of Eligibility (COE) issued by regional immigration bureau in Japan.",
						"Valid Passport with 6 months remaining validity.",
						"One signed application form.",
						"Employment Contract copy with company seal.",
						"Academic graduation certificate (degree) copy.",
					},
					Process:     []string{"COE issuance in Japan", "Visa stamping at local consulate"},
					Formalities: []string{"Residence Card (Zairyu) issuance at major airports (Narita/Haneda)", "City Hall registration within 14 days"},
					Duration:    "1, 3, or 5 Years",
					Cost:        "₹4,500 Approx.",
					Checklists: []ChecklistItem{
						{Label: "Work Visa Checklist", URL: globalDriveURL},
						{Label: "COE Verification Guide", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "Work Permit Protocol", URL: globalDriveURL, Description: "Step-by-step for COE holders"},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryStudent: {
					Description:  "For students enrolled in recognized Japanese educational institutions.",
					Requirements: []string{"COE for Study", "Admission Letter", "Financial proof of support (Bank statements of sponsor)"},
					Process:      []string{"Apply for COE through school", "Consular submission for visa stamping"},
					Formalities:  []string{"Permission for part-time work application at airport", "National Health Insurance enrollment"},
					Duration:     "Course Duration",
					Cost:         "₹3,200 Approx.",
					Checklists: []ChecklistItem{
						{Label: "Student Visa Checklist", URL: globalDriveURL},
						{Label: "Guardian Financial Support Letter", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "Student Life Handbook", URL: globalDriveURL, Description: "Official JASSO orientation guide"},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryLongTerm:   defaultLongTerm(),
				CategoryJournalist: defaultJournalist(),
			},
		},
		"germany": {
			Name:        "Germany",
			Code:        "DE",
			Coordinates: &Coordinates{Top: 26, Left: 51},
			Visa: map[string]VisaCategoryDetails{
				CategoryShortTerm: {
					Description: "Schengen visa for short stays in Germany and the EU region.",
					Requirements: []string{
						"Valid Passport with 2 blank pages and 3 months validity beyond stay.",
						"Travel Health Insurance (€30,000 coverage, valid for all Schengen states).",
						"Confirmed Hotel Bookings for the entire duration.",
						"Proof of Employment / Last 3 Salary Slips.",
						"Cover letter detailing purpose of visit and itinerary.",
					},
					Process:     []string{"Online Videx application", "VFS Appointment booking", "Biometric collection", "Review"},
					Formalities: []string{"Passport control interview on initial entry into Schengen"},
					Duration:    "90 Days",
					Cost:        "€80 + VFS Service Fee",
					Checklists: []ChecklistItem{
						{Label: "Short-term Tourist Checklist", URL: globalDriveURL},
						{Label: "Schengen Business Checklist", URL: globalDriveURL},
						{Label: "Cultural/Sport Event Checklist", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "Digital Videx Portal (Germany)", URL: "https://videx.diplo.de/", IsExternal: true, Description: "Mandatory digital application portal"},
						{Label: "Schengen Health Insurance Rules", URL: globalDriveURL, Description: "Detailed regulatory requirements for policy"},
					},
					PhotoSpecs: "Standard Schengen biometric specifications (35x45mm, high contrast).",
				},
				CategoryWorkPermit: {
					Description:  "Employment visa including EU Blue Card for skilled workers.",
					Requirements: []string{"Job Offer", "University Degree (Anabin/ZAB recognized)", "Employment Contract with salary details"},
					Process:      []string{"National Visa Appointment", "Consular Interview", "D-Visa issuance"},
					Formalities:  []string{"Anmeldung (City Address Registration)", "Health insurance activation"},
					Duration:     "Up to 4 Years",
					Cost:         "€75",
					Checklists: []ChecklistItem{
						{Label: "Blue Card Checklist", URL: globalDriveURL},
						{Label: "Specialist Work Checklist", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "Recognition of Foreign Qualifications", URL: "https://www.anabin.kmk.org/", IsExternal: true, Description: "Anabin database for degree verification"},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryStudent: {
					Description:  "Student visa for higher education (Bachelor/Master) in Germany.",
					Requirements: []string{"University Admission Letter", "Blocked Account (Sperrkonto) Proof (€11,208)", "Language certificates"},
					Process:      []string{"Open Blocked Account", "Apply at German Embassy", "Stamping"},
					Formalities:  []string{"University enrollment", "Residence permit application at Foreigners' Office"},
					Duration:     "Study duration",
					Cost:         "€75",
					Checklists: []ChecklistItem{
						{Label: "Student Visa Checklist", URL: globalDriveURL},
						{Label: "Blocked Account Opening Manual", URL: globalDriveURL},
					},
					Downloads: []DownloadItem{
						{Label: "Fintiba Blocked Account Portal", URL: "https://www.fintiba.com/", IsExternal: true, Description: "Official partner for Sperrkonto"},
					},
					PhotoSpecs: commonPhotoSpecs,
				},
				CategoryLongTerm:   defaultLongTerm(),
				CategoryJournalist: defaultJournalist(),
			},
		},
	}
}
