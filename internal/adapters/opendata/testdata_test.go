package opendata

const seoulXMLFixture = `<?xml version="1.0" encoding="UTF-8"?>
<LOCALDATA_072404_JN>
<list_total_count>12345</list_total_count>
<RESULT>
<CODE>INFO-000</CODE>
<MESSAGE>정상 처리되었습니다</MESSAGE>
</RESULT>
<row>
<MGTNO>3000000-101-2001-00001</MGTNO>
<BPLCNM>종로 국밥</BPLCNM>
<UPTAENM>한식</UPTAENM>
<SITEWHLADDR>서울특별시 종로구 종로1가 1번지</SITEWHLADDR>
<RDNWHLADDR>서울특별시 종로구 종로 1</RDNWHLADDR>
<SITETEL>02 000 0001</SITETEL>
<TRDSTATENM>영업/정상</TRDSTATENM>
<DCBYMD></DCBYMD>
<APVPERMYMD>2001-01-01</APVPERMYMD>
<X>198000.123456789</X>
<Y>452000.987654321</Y>
<FACILTOTSCP>33.5</FACILTOTSCP>
<SITEPOSTNO>110121</SITEPOSTNO>
<RDNPOSTNO>03154</RDNPOSTNO>
</row>
<row>
<MGTNO>3000000-101-2001-00002</MGTNO>
<BPLCNM>공평 분식</BPLCNM>
<UPTAENM>분식</UPTAENM>
<SITEWHLADDR>서울특별시 종로구 공평동 2번지</SITEWHLADDR>
<RDNWHLADDR>서울특별시 종로구 우정국로 2</RDNWHLADDR>
<TRDSTATENM>폐업</TRDSTATENM>
<DCBYMD>2015-05-05</DCBYMD>
</row>
<row>
<MGTNO>3000000-101-2001-00003</MGTNO>
<BPLCNM>관훈 카페</BPLCNM>
<SITEWHLADDR>서울특별시 종로구 관훈동 3번지</SITEWHLADDR>
<TRDSTATENM>영업</TRDSTATENM>
</row>
</LOCALDATA_072404_JN>`

const foodSafetyJSONFixture = `{
  "COOKRST": {
    "total_count": "2",
    "RESULT": {"MSG": "정상처리되었습니다.", "CODE": "INFO-000"},
    "row": [
      {"LCNS_NO": 20110001, "BSSH_NM": "수원 갈비", "SITE_ADDR": "경기도 수원시 팔달구 인계동 1", "BSN_STATE_NM": "영업", "X_CRDNT": 127.0286009},
      {"LCNS_NO": "20110002", "BSSH_NM": "수원 냉면", "BSN_STATE_NM": "폐업"}
    ]
  }
}`
