// Copyright 2026 sheetbridge contributors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetbridge bridges tabular data between local files and Google Sheets
worksheets.

The bridge package is the reusable core: read, write and append operations
against a worksheet reference, with remote failures classified into a small
error taxonomy (not found, permission denied, transient). The tabular package
converts tables to and from TSV, CSV and XLSX files.

The sheetbridge CLI supports the following commands:

  - authorise, to run the OAuth2 flow and cache access tokens
  - get, to download a worksheet range to a local file
  - put, to upload a local file to a worksheet range
  - append, to append a local file's rows to a worksheet
  - clear, to clear one or more worksheet ranges
  - sheets, to list the worksheets in a spreadsheet
  - revision, to display the latest Drive revision of a spreadsheet
  - version, to display the CLI version
*/
package sheetbridge
