package render

// DefaultCoordinates returns approximate country centroids used to place map
// markers. The table is returned fresh so callers may extend it.
func DefaultCoordinates() Coordinates {
	return Coordinates{
		"Afghanistan":                      {Lat: 33.9391, Lon: 67.7100},
		"Albania":                          {Lat: 41.1533, Lon: 20.1683},
		"Algeria":                          {Lat: 28.0339, Lon: 1.6596},
		"Angola":                           {Lat: -11.2027, Lon: 17.8739},
		"Argentina":                        {Lat: -38.4161, Lon: -63.6167},
		"Armenia":                          {Lat: 40.0691, Lon: 45.0382},
		"Aruba":                            {Lat: 12.5211, Lon: -69.9683},
		"Australia":                        {Lat: -25.2744, Lon: 133.7751},
		"Austria":                          {Lat: 47.5162, Lon: 14.5501},
		"Azerbaijan":                       {Lat: 40.1431, Lon: 47.5769},
		"Bahamas":                          {Lat: 25.0343, Lon: -77.3963},
		"Bahrain":                          {Lat: 26.0667, Lon: 50.5577},
		"Bangladesh":                       {Lat: 23.6850, Lon: 90.3563},
		"Belarus":                          {Lat: 53.7098, Lon: 27.9534},
		"Belgium":                          {Lat: 50.5039, Lon: 4.4699},
		"Bhutan":                           {Lat: 27.5142, Lon: 90.4336},
		"Bolivia":                          {Lat: -16.2902, Lon: -63.5887},
		"Bosnia and Herzegovina":           {Lat: 43.9159, Lon: 17.6791},
		"Botswana":                         {Lat: -22.3285, Lon: 24.6849},
		"Brazil":                           {Lat: -14.2350, Lon: -51.9253},
		"Bulgaria":                         {Lat: 42.7339, Lon: 25.4858},
		"Burkina Faso":                     {Lat: 12.2383, Lon: -1.5616},
		"Burma":                            {Lat: 21.9162, Lon: 95.9560},
		"Cambodia":                         {Lat: 12.5657, Lon: 104.9910},
		"Cameroon":                         {Lat: 7.3697, Lon: 12.3547},
		"Canada":                           {Lat: 56.1304, Lon: -106.3468},
		"Chile":                            {Lat: -35.6751, Lon: -71.5430},
		"China":                            {Lat: 35.8617, Lon: 104.1954},
		"Colombia":                         {Lat: 4.5709, Lon: -74.2973},
		"Congo":                            {Lat: -0.2280, Lon: 15.8277},
		"Costa Rica":                       {Lat: 9.7489, Lon: -83.7534},
		"Cote D'Ivoire":                    {Lat: 7.5399, Lon: -5.5471},
		"Croatia":                          {Lat: 45.1, Lon: 15.2},
		"Cuba":                             {Lat: 21.5218, Lon: -77.7812},
		"Czech Republic":                   {Lat: 49.8175, Lon: 15.4729},
		"Czechoslovakia":                   {Lat: 49.8175, Lon: 15.4729},
		"Democratic Republic of the Congo": {Lat: -4.0383, Lon: 21.7587},
		"Denmark":                          {Lat: 56.2639, Lon: 9.5018},
		"Ecuador":                          {Lat: -1.8312, Lon: -78.1834},
		"Egypt":                            {Lat: 26.8206, Lon: 30.8025},
		"Estonia":                          {Lat: 58.5953, Lon: 25.0136},
		"Ethiopia":                         {Lat: 9.145, Lon: 40.4897},
		"Finland":                          {Lat: 61.9241, Lon: 25.7482},
		"France":                           {Lat: 46.6034, Lon: 1.8883},
		"Georgia":                          {Lat: 42.3154, Lon: 43.3569},
		"Germany":                          {Lat: 51.1657, Lon: 10.4515},
		"Ghana":                            {Lat: 7.9465, Lon: -1.0232},
		"Greece":                           {Lat: 39.0742, Lon: 21.8243},
		"Guinea":                           {Lat: 9.9456, Lon: -9.6966},
		"Guinea-Bissau":                    {Lat: 11.8037, Lon: -15.1804},
		"Hong Kong":                        {Lat: 22.3193, Lon: 114.1694},
		"Hungary":                          {Lat: 47.1625, Lon: 19.5033},
		"Iceland":                          {Lat: 64.9631, Lon: -19.0208},
		"India":                            {Lat: 20.5937, Lon: 78.9629},
		"Indonesia":                        {Lat: -0.7893, Lon: 113.9213},
		"Iran":                             {Lat: 32.4279, Lon: 53.6880},
		"Ireland":                          {Lat: 53.1424, Lon: -7.6921},
		"Israel":                           {Lat: 31.0461, Lon: 34.8516},
		"Italy":                            {Lat: 41.8719, Lon: 12.5674},
		"Jamaica":                          {Lat: 18.1096, Lon: -77.2975},
		"Japan":                            {Lat: 36.2048, Lon: 138.2529},
		"Jordan":                           {Lat: 30.5852, Lon: 36.2384},
		"Kazakhstan":                       {Lat: 48.0196, Lon: 66.9237},
		"Korea":                            {Lat: 35.9078, Lon: 127.7669},
		"Kuwait":                           {Lat: 29.3117, Lon: 47.4818},
		"Kyrgyzstan":                       {Lat: 41.2044, Lon: 74.7661},
		"Latvia":                           {Lat: 56.8796, Lon: 24.6032},
		"Lebanon":                          {Lat: 33.8547, Lon: 35.8623},
		"Libya":                            {Lat: 26.3351, Lon: 17.2283},
		"Liechtenstein":                    {Lat: 47.1660, Lon: 9.5554},
		"Lithuania":                        {Lat: 55.1694, Lon: 23.8813},
		"Luxembourg":                       {Lat: 49.8153, Lon: 6.1296},
		"Macedonia":                        {Lat: 41.6086, Lon: 21.7453},
		"Malaysia":                         {Lat: 4.2105, Lon: 101.9758},
		"Mali":                             {Lat: 17.5707, Lon: -3.9962},
		"Martinique":                       {Lat: 14.6415, Lon: -61.0242},
		"Mauritania":                       {Lat: 21.0079, Lon: -10.9408},
		"Mexico":                           {Lat: 23.6345, Lon: -102.5528},
		"Moldova":                          {Lat: 47.4116, Lon: 28.3699},
		"Monaco":                           {Lat: 43.7384, Lon: 7.4246},
		"Montenegro":                       {Lat: 42.7087, Lon: 19.3744},
		"Morocco":                          {Lat: 31.7917, Lon: -7.0926},
		"Namibia":                          {Lat: -22.9576, Lon: 18.4904},
		"Nepal":                            {Lat: 28.3949, Lon: 84.1240},
		"Netherlands":                      {Lat: 52.1326, Lon: 5.2913},
		"New Zealand":                      {Lat: -40.9006, Lon: 174.8860},
		"Nigeria":                          {Lat: 9.0820, Lon: 8.6753},
		"Norway":                           {Lat: 60.4720, Lon: 8.4689},
		"Pakistan":                         {Lat: 30.3753, Lon: 69.3451},
		"Palestinian Territory":            {Lat: 31.9522, Lon: 35.2332},
		"Panama":                           {Lat: 8.5379, Lon: -80.7821},
		"Papua New Guinea":                 {Lat: -6.3149, Lon: 143.9555},
		"Peru":                             {Lat: -9.1899, Lon: -75.0152},
		"Philippines":                      {Lat: 12.8797, Lon: 121.7740},
		"Poland":                           {Lat: 51.9194, Lon: 19.1451},
		"Portugal":                         {Lat: 39.3999, Lon: -8.2245},
		"Puerto Rico":                      {Lat: 18.2208, Lon: -66.5901},
		"Qatar":                            {Lat: 25.2760, Lon: 51.2148},
		"Romania":                          {Lat: 45.9432, Lon: 24.9668},
		"Russia":                           {Lat: 61.5240, Lon: 105.3188},
		"Senegal":                          {Lat: 14.4974, Lon: -14.4524},
		"Serbia":                           {Lat: 44.0165, Lon: 21.0059},
		"Singapore":                        {Lat: 1.3521, Lon: 103.8198},
		"Slovakia":                         {Lat: 48.6690, Lon: 19.6990},
		"Slovenia":                         {Lat: 46.1512, Lon: 14.9955},
		"South Africa":                     {Lat: -30.5595, Lon: 22.9375},
		"Spain":                            {Lat: 40.4637, Lon: -3.7492},
		"Sri Lanka":                        {Lat: 7.8731, Lon: 80.7718},
		"Sweden":                           {Lat: 60.1282, Lon: 18.6435},
		"Switzerland":                      {Lat: 46.8182, Lon: 8.2275},
		"Syria":                            {Lat: 34.8021, Lon: 38.9968},
		"Taiwan":                           {Lat: 23.6978, Lon: 120.9605},
		"Thailand":                         {Lat: 15.8700, Lon: 100.9925},
		"Trinidad and Tobago":              {Lat: 10.6918, Lon: -61.2225},
		"Tunisia":                          {Lat: 33.8869, Lon: 9.5375},
		"Turkey":                           {Lat: 38.9637, Lon: 35.2433},
		"Turkmenistan":                     {Lat: 38.9697, Lon: 59.5563},
		"Ukraine":                          {Lat: 48.3794, Lon: 31.1656},
		"United Kingdom":                   {Lat: 55.3781, Lon: -3.4360},
		"United States of America":         {Lat: 37.0902, Lon: -95.7129},
		"Uruguay":                          {Lat: -32.5228, Lon: -55.7658},
		"Uzbekistan":                       {Lat: 41.3775, Lon: 64.5853},
		"Venezuela":                        {Lat: 6.4238, Lon: -66.5897},
		"Vietnam":                          {Lat: 14.0583, Lon: 108.2772},
		"Yugoslavia":                       {Lat: 44.0165, Lon: 21.0059},
		"Zambia":                           {Lat: -13.1339, Lon: 27.8493},
		"Zimbabwe":                         {Lat: -19.0154, Lon: 29.1549},
	}
}
