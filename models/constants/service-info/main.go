package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "GenoBrowse Aggregation Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the GenoBrowse genome aggregation API!"
	SERVICE_DESCRIPTION ServiceInfo = "Aggregation layer over the UCSC and NCBI public genomics APIs for a genome browser."
	SERVICE_CONTACT     ServiceInfo = "mailto:support@genobrowse.dev"

	SERVICE_ARTIFACT    ServiceInfo = "genobrowse"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("dev.genobrowse:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
