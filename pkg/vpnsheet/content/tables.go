// Package content holds the reference tables written into the Azure/AWS
// site-to-site VPN setup workbook.
package content

import "github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"

// Sheet names in display order.
const (
	SheetPrerequisites   = "Prerequisites"
	SheetAzureSetup      = "Azure Setup"
	SheetAWSSetup        = "AWS Setup"
	SheetTesting         = "Testing"
	SheetTroubleshooting = "Troubleshooting"
)

// SheetNames returns the sheet names in display order.
func SheetNames() []string {
	return []string{
		SheetPrerequisites,
		SheetAzureSetup,
		SheetAWSSetup,
		SheetTesting,
		SheetTroubleshooting,
	}
}

// Workbook returns a fresh copy of the five-sheet setup workbook.
func Workbook() models.Workbook {
	return models.Workbook{
		Sheets: []models.Sheet{
			{Name: SheetPrerequisites, Table: Prerequisites()},
			{Name: SheetAzureSetup, Table: AzureSetup()},
			{Name: SheetAWSSetup, Table: AWSSetup()},
			{Name: SheetTesting, Table: Testing()},
			{Name: SheetTroubleshooting, Table: Troubleshooting()},
		},
	}
}

// Prerequisites lists accounts, address spaces and regions needed up front.
func Prerequisites() models.Table {
	return models.Table{Rows: [][]string{
		{"Component", "Requirement", "Notes"},
		{"Azure Subscription", "Active subscription with admin access", "Verify permissions for network resource creation"},
		{"AWS Account", "Active account with admin access", "Verify VPC and VPN creation permissions"},
		{"Azure IP Range", "172.16.0.0/16", "For Azure Virtual Network"},
		{"AWS IP Range", "10.0.0.0/16", "For AWS VPC"},
		{"Azure Region", "Select based on location", "Choose region closest to your primary users"},
		{"AWS Region", "Select based on location", "Should be relatively close to Azure region"},
	}}
}

// AzureSetup lists the Azure resources per phase. Multi-line configuration
// notes stay in a single cell.
func AzureSetup() models.Table {
	return models.Table{Rows: [][]string{
		{"Phase", "Resource", "Configuration", "Estimated Time"},
		{"1", "Resource Group", "Name: RG-AzureAWSVPN", "5 minutes"},
		{"1", "Virtual Network", "Name: AzureVNet\nAddress: 172.16.0.0/16", "10 minutes"},
		{"1", "Subnet", "Name: Subnet-AzureVPN\nAddress: 172.16.1.0/24", "5 minutes"},
		{"1", "Gateway Subnet", "Address: /27 size from VNet space", "5 minutes"},
		{"2", "VPN Gateway", "Name: AzureVPNGateway\nSKU: VpnGw1\nType: Route-based", "45 minutes"},
		{"3", "Local Network Gateway", "Name: AWSLocalNetworkGateway\nIP: AWS VPN Public IP", "10 minutes"},
		{"3", "VPN Connection", "Name: AzureAWSVPNConnection\nType: Site-to-site (IPsec)", "15 minutes"},
	}}
}

// AWSSetup lists the AWS resources per phase.
func AWSSetup() models.Table {
	return models.Table{Rows: [][]string{
		{"Phase", "Resource", "Configuration", "Estimated Time"},
		{"1", "VPC", "Name: AWS-VPC\nAddress: 10.0.0.0/16", "10 minutes"},
		{"1", "Subnet", "Name: Subnet-AWSVPN\nAddress: 10.0.1.0/24", "5 minutes"},
		{"2", "Virtual Private Gateway", "Name: AWS-VPN-VGW", "10 minutes"},
		{"2", "Customer Gateway", "Name: Azure-CGW\nIP: Azure VPN Gateway Public IP", "10 minutes"},
		{"3", "Site-to-Site VPN", "Type: Static\nRouting: Static", "15 minutes"},
		{"3", "Route Table", "Add route for Azure subnet", "5 minutes"},
	}}
}

// Testing lists the connectivity checks. The Status column is left blank
// for the operator to fill in.
func Testing() models.Table {
	return models.Table{Rows: [][]string{
		{"Test Phase", "Test Case", "Expected Result", "Status"},
		{"Initial Connectivity", "VPN Tunnel Status", "Status should show as 'Connected' in both portals", ""},
		{"Initial Connectivity", "Route Propagation", "Routes should appear in route tables", ""},
		{"Network Testing", "Deploy Test VM in Azure", "VM should be created successfully", ""},
		{"Network Testing", "Deploy EC2 in AWS", "EC2 instance should be created successfully", ""},
		{"Network Testing", "Ping Test Azure to AWS", "Ping should succeed using private IPs", ""},
		{"Network Testing", "Ping Test AWS to Azure", "Ping should succeed using private IPs", ""},
	}}
}

// Troubleshooting maps common failures to causes and fixes.
func Troubleshooting() models.Table {
	return models.Table{Rows: [][]string{
		{"Issue", "Possible Cause", "Resolution Steps"},
		{"VPN Connection Not Established", "Mismatched shared key", "Verify shared key is identical on both sides"},
		{"VPN Connection Not Established", "Security group/NSG rules", "Check ICMP and required ports are allowed"},
		{"Cannot Ping Across VPN", "Route tables not updated", "Verify route propagation and static routes"},
		{"High Latency", "Region selection", "Verify Azure and AWS regions are geographically close"},
		{"Connection Drops", "Dead Peer Detection (DPD)", "Adjust DPD timeout values"},
		{"BGP Not Working", "ASN mismatch", "Verify ASN numbers match on both sides"},
	}}
}
