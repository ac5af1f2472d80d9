// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

const sampleSearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE eSearchResult PUBLIC "-//NLM//DTD esearch 20060628//EN" "https://eutils.ncbi.nlm.nih.gov/eutils/dtd/20060628/esearch.dtd">
<eSearchResult><Count>250</Count><RetMax>1</RetMax><RetStart>0</RetStart><QueryKey>1</QueryKey><WebEnv>MCID_abc123</WebEnv><IdList>
<Id>39000001</Id>
</IdList><TranslationSet/><TranslationStack>   <TermSet>    <Term>memoria[All Fields]</Term>    <Field>All Fields</Field>    <Count>9999</Count>    <Explode>N</Explode>   </TermSet>   <OP>GROUP</OP>  </TranslationStack><QueryTranslation>memoria[All Fields]</QueryTranslation></eSearchResult>
`

const sampleSummaryXML = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE eSummaryResult PUBLIC "-//NLM//DTD esummary v1 20041029//EN" "https://eutils.ncbi.nlm.nih.gov/eutils/dtd/20041029/esummary-v1.dtd">
<eSummaryResult>
<DocSum>
	<Id>39000001</Id>
	<Item Name="PubDate" Type="Date">2021 Jan</Item>
	<Item Name="Source" Type="String">J Mem</Item>
	<Item Name="AuthorList" Type="List">
		<Item Name="Author" Type="String">Silva J</Item>
		<Item Name="Author" Type="String">Souza A</Item>
	</Item>
	<Item Name="LastAuthor" Type="String">Souza A</Item>
	<Item Name="Title" Type="String">Memory Study</Item>
	<Item Name="ELocationID" Type="String">10.1/xyz</Item>
</DocSum>
<DocSum>
	<Id>39000002</Id>
	<Item Name="PubDate" Type="Date">2022</Item>
	<Item Name="AuthorList" Type="List"></Item>
	<Item Name="Title" Type="String">Anonymous &amp; Untitled, Part 2</Item>
</DocSum>
</eSummaryResult>
`
