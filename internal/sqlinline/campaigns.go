package sqlinline

const QInsertCampaign = `--sql 4f6a2d1c-9b3e-4c7a-8e2f-1d5b6a9c0e34
insert into campaigns(title, description, target, currency, deadline, status, created_at, updated_at)
values ($1::text, $2::text, $3::numeric, $4::text, $5::date, $6::text, now(), now())
returning id;
`

const QUpdateCampaign = `--sql 7c1e5b2a-3d4f-4a6b-9c8d-2e7f0a1b3c45
update campaigns
set title = $2::text,
    description = $3::text,
    target = $4::numeric,
    currency = $5::text,
    deadline = $6::date,
    status = $7::text,
    updated_at = now()
where id = $1::bigint;
`

const QDeleteCampaign = `--sql 0b9d8c7e-6f5a-4e3d-b2c1-a0f9e8d7c6b5
delete from campaigns where id = $1::bigint;
`

const QSelectCampaignByID = `--sql 2a3b4c5d-6e7f-4081-92a3-b4c5d6e7f809
select id, title, description, target::text, currency, deadline, status, created_at, updated_at
from campaigns
where id = $1::bigint;
`

const QListCampaigns = `--sql 9e8f7a6b-5c4d-4321-ab09-8c7d6e5f4a3b
select id, title, description, target::text, currency, deadline, status, created_at, updated_at
from campaigns
order by created_at desc;
`

const QCampaignCounts = `--sql 5d4c3b2a-1f0e-4d9c-8b7a-6e5f4d3c2b1a
select count(*), count(*) filter (where status = 'active')
from campaigns;
`
