package slugs

// parkSlugs is the canonical page list carried over from the legacy site
// migration. Parks without a page on the new site are intentionally absent.
var parkSlugs = []Entry{
	{ORCS: 1, Slug: "/strathcona-park"},
	{ORCS: 2, Slug: "/mount-robson-park"},
	{ORCS: 3, Slug: "/hamber-park"},
	{ORCS: 4, Slug: "/kokanee-glacier-park"},
	{ORCS: 5, Slug: "/mount-assiniboine-park"},
	{ORCS: 7, Slug: "/garibaldi-park"},
	{ORCS: 8, Slug: "/golden-ears-park"},
	{ORCS: 15, Slug: "/mount-seymour-park"},
	{ORCS: 21, Slug: "/alice-lake-park"},
	{ORCS: 24, Slug: "/wells-gray-park"},
	{ORCS: 33, Slug: "/ec-manning-park"},
	{ORCS: 41, Slug: "/cultus-lake-park"},
	{ORCS: 45, Slug: "/miracle-beach-park"},
	{ORCS: 54, Slug: "/okanagan-lake-park"},
	{ORCS: 96, Slug: "/goldstream-park"},
	{ORCS: 129, Slug: "/bowron-lake-park"},
	{ORCS: 137, Slug: "/shannon-falls-park"},
	{ORCS: 193, Slug: "/rathtrevor-beach-park"},
	{ORCS: 199, Slug: "/cathedral-park"},
	{ORCS: 250, Slug: "/cape-scott-park"},
	{ORCS: 314, Slug: "/porteau-cove-park"},
	{ORCS: 339, Slug: "/cypress-park"},
	{ORCS: 363, Slug: "/joffre-lakes-park"},
	{ORCS: 6328, Slug: "/stawamus-chief-park"},
	{ORCS: 9398, Slug: "/juan-de-fuca-park"},
}
