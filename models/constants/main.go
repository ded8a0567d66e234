package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout GenoBrowse and it's
	associated services.
*/
type GenomeId string
