package common

// JournalName is the full name of the journal, used in citations and the
// CLI banner.
const JournalName = "La Revista Nacional de las Ciencias para Estudiantes"
