/*
Package ga-app-sheets manages Google Analytics metadata from Google Sheets worksheets.

ga-app-sheets can be used from the command line but is really intended to be run from a cron job to keep the
custom dimensions and custom metrics of a set of Universal Analytics properties in line with a template maintained
in a shared spreadsheet, and to publish the GA4 conversion events for review.

ga-app-sheets supports the following commands:

  - authorise, to authorise application access to the Google Sheets worksheet and Google Analytics
  - ua-properties, to list the Universal Analytics properties into the destination properties table
  - ua-template, to copy the custom dimensions/metrics of a template property into the template table
  - ua-modify, to create/update the custom dimensions/metrics of the selected properties from the template
  - ga4-properties, to list the GA4 properties into the GA4 properties worksheet
  - ga4-conversion-events, to list the conversion events of the selected GA4 properties
  - get, to download a Google Sheets worksheet range as a TSV file
  - put, to store a TSV file to a Google Sheets worksheet range
*/
package sheets
